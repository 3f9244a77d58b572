package serviceImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"petrolog/entities"
	zoneRepoImp "petrolog/pkg/analysis/repositoryImp"
	"petrolog/pkg/analysis/service"
	"petrolog/pkg/petro"
	logRepoImp "petrolog/pkg/welllog/repositoryImp"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.WellLog{}, &entities.Zone{}))
	return db
}

func seedCurve(t *testing.T, db *gorm.DB, wellID uint, logType string, depths, values []float64) {
	t.Helper()
	rows := make([]entities.WellLog, len(depths))
	for i := range depths {
		rows[i] = entities.WellLog{WellID: wellID, LogType: logType, Depth: depths[i], Value: values[i]}
	}
	require.NoError(t, db.Create(&rows).Error)
}

func newSvc(db *gorm.DB) *AnalysisSvc {
	return New(logRepoImp.New(db), zoneRepoImp.New(db))
}

func window(from, to float64) service.CalcRequest {
	return service.CalcRequest{DepthFrom: &from, DepthTo: &to}
}

func TestCalculatePersistsClassifiedZone(t *testing.T) {
	db := openTestDB(t)
	depths := []float64{1000, 1001, 1002, 1003}
	seedCurve(t, db, 1, "GR", depths, []float64{30, 30, 30, 30})
	seedCurve(t, db, 1, "DENS", depths, []float64{2.40, 2.40, 2.40, 2.40})
	seedCurve(t, db, 1, "RESIS", depths, []float64{50, 50, 50, 50})

	z, interp, err := newSvc(db).Calculate(1, window(1000, 1003))
	require.NoError(t, err)

	require.NotNil(t, z.Vshale)
	assert.InDelta(t, 0.1, *z.Vshale, 1e-9)
	require.NotNil(t, z.PorosityEffective)
	assert.Equal(t, petro.ZoneReservoir, z.ZoneType)
	assert.Equal(t, "auto", z.CalculatedBy)
	assert.Equal(t, z.ZoneType, interp.ZoneType)
	assert.NotEmpty(t, interp.Recommendations)

	var count int64
	require.NoError(t, db.Model(&entities.Zone{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCalculateAppendOnlyKeepsDuplicates(t *testing.T) {
	db := openTestDB(t)
	depths := []float64{1000, 1001}
	seedCurve(t, db, 1, "GR", depths, []float64{100, 100})

	svc := newSvc(db)
	_, _, err := svc.Calculate(1, window(1000, 1001))
	require.NoError(t, err)
	_, _, err = svc.Calculate(1, window(1000, 1001))
	require.NoError(t, err)

	zones, err := zoneRepoImp.New(db).ListByWell(1, "")
	require.NoError(t, err)
	assert.Len(t, zones, 2, "identical windows must both be kept")
}

func TestCalculateEmptyWellYieldsAllNullZone(t *testing.T) {
	db := openTestDB(t)

	z, interp, err := newSvc(db).Calculate(7, window(1000, 1100))
	require.NoError(t, err)
	assert.Nil(t, z.Vshale)
	assert.Nil(t, z.Porosity)
	assert.Nil(t, z.SaturationWater)
	assert.Equal(t, petro.ZoneOther, z.ZoneType)
	assert.False(t, interp.IsReservoir)

	zones, err := zoneRepoImp.New(db).ListByWell(7, "")
	require.NoError(t, err)
	assert.Len(t, zones, 1, "the empty interval is still recorded")
}

func TestCalculateMissingDepthsRejected(t *testing.T) {
	db := openTestDB(t)
	from := 1000.0

	_, _, err := newSvc(db).Calculate(1, service.CalcRequest{DepthFrom: &from})
	var verr *petro.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCalculateParamOverride(t *testing.T) {
	db := openTestDB(t)
	depths := []float64{1000, 1001}
	seedCurve(t, db, 1, "GR", depths, []float64{60, 60})

	svc := newSvc(db)
	zDefault, _, err := svc.Calculate(1, window(1000, 1001))
	require.NoError(t, err)

	req := window(1000, 1001)
	shale := 200.0
	req.GRShale = &shale
	zWide, _, err := svc.Calculate(1, req)
	require.NoError(t, err)

	require.NotNil(t, zDefault.Vshale)
	require.NotNil(t, zWide.Vshale)
	assert.Less(t, *zWide.Vshale, *zDefault.Vshale,
		"a higher shale baseline must lower the shale index")
}

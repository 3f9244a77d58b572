package repositoryImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"petrolog/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.WellLog{}))
	return db
}

func samples(wellID uint, logType string, pairs ...float64) []entities.WellLog {
	out := make([]entities.WellLog, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, entities.WellLog{WellID: wellID, LogType: logType, Depth: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func TestReplaceCurveDropsOldSamples(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	require.NoError(t, r.ReplaceCurve(1, "GR", samples(1, "GR", 1000, 50, 1001, 60, 1002, 70)))
	require.NoError(t, r.ReplaceCurve(1, "GR", samples(1, "GR", 2000, 90)))

	rows, err := r.ListByWell(1, "GR", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1, "no sample from the old curve may survive")
	assert.Equal(t, 2000.0, rows[0].Depth)
}

func TestReplaceCurveLeavesOtherTypesAlone(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	require.NoError(t, r.ReplaceCurve(1, "GR", samples(1, "GR", 1000, 50)))
	require.NoError(t, r.ReplaceCurve(1, "DENS", samples(1, "DENS", 1000, 2.4)))
	require.NoError(t, r.ReplaceCurve(1, "GR", samples(1, "GR", 1500, 80)))

	dens, err := r.ListByWell(1, "DENS", nil, nil)
	require.NoError(t, err)
	assert.Len(t, dens, 1)
}

func TestCurvesGroupsOrderedByDepth(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	// inserted out of depth order on purpose
	require.NoError(t, r.AppendSamples(samples(1, "GR", 1002, 70, 1000, 50, 1001, 60)))
	require.NoError(t, r.AppendSamples(samples(1, "RESIS", 1000, 10)))

	curves, err := r.Curves(1, []string{"GR", "RESIS"})
	require.NoError(t, err)
	require.Len(t, curves, 2)
	assert.Equal(t, []float64{1000, 1001, 1002}, curves["GR"].Depths)
	assert.Equal(t, []float64{50, 60, 70}, curves["GR"].Values)
}

func TestListByWellDepthFilter(t *testing.T) {
	db := openTestDB(t)
	r := New(db)
	require.NoError(t, r.AppendSamples(samples(1, "GR", 1000, 50, 1010, 60, 1020, 70)))

	from, to := 1005.0, 1015.0
	rows, err := r.ListByWell(1, "", &from, &to)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1010.0, rows[0].Depth)
}

func TestDepthRangeAndStats(t *testing.T) {
	db := openTestDB(t)
	r := New(db)
	require.NoError(t, r.AppendSamples(samples(1, "GR", 1000, 40, 1010, 80)))
	require.NoError(t, r.AppendSamples(samples(1, "DENS", 1005, 2.5)))

	min, max, err := r.DepthRange(1)
	require.NoError(t, err)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 1000.0, *min)
	assert.Equal(t, 1010.0, *max)

	stats, err := r.StatsByType(1)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "DENS", stats[0].LogType)
	assert.Equal(t, "GR", stats[1].LogType)
	assert.EqualValues(t, 2, stats[1].Count)
	assert.InDelta(t, 60.0, stats[1].AvgValue, 1e-9)
}

func TestDepthRangeEmptyWell(t *testing.T) {
	db := openTestDB(t)
	min, max, err := New(db).DepthRange(99)
	require.NoError(t, err)
	assert.Nil(t, min)
	assert.Nil(t, max)
}

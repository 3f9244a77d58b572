// Seeds a demo user, two wells, synthetic curves and a few computed
// zones so the API has something to show on first run.
package main

import (
	"log"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	"petrolog/config"
	"petrolog/database"
	"petrolog/entities"

	anaRepoImp "petrolog/pkg/analysis/repositoryImp"
	anaSvc "petrolog/pkg/analysis/service"
	anaSvcImp "petrolog/pkg/analysis/serviceImp"
	kbRepoImp "petrolog/pkg/kb/repositoryImp"
	kbSvcImp "petrolog/pkg/kb/serviceImp"
	logRepoImp "petrolog/pkg/welllog/repositoryImp"
)

const (
	depthStart = 2800.0
	depthEnd   = 3200.0
	depthStep  = 0.5
)

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// syntheticCurves builds an alternating sand/shale interval: clean
// sands read low GR and high resistivity, shales the opposite.
func syntheticCurves(rng *rand.Rand) (depths []float64, curves map[string][]float64) {
	n := int((depthEnd - depthStart) / depthStep)
	depths = make([]float64, n)
	litho := make([]float64, n) // 0 sand, 1 shale

	const zonePoints = 50
	for i := 0; i < n; i++ {
		depths[i] = depthStart + float64(i)*depthStep
		if (i/zonePoints)%3 == 0 { // one shale band in three
			litho[i] = 1
		}
	}
	for i := range litho {
		litho[i] = clip(litho[i]+rng.NormFloat64()*0.1, 0, 1)
	}

	gr := make([]float64, n)
	resis := make([]float64, n)
	dens := make([]float64, n)
	neut := make([]float64, n)
	sp := make([]float64, n)
	for i := 0; i < n; i++ {
		l := litho[i]
		sand := 1 - l

		gr[i] = clip(l*(120+rng.NormFloat64()*10)+sand*(30+rng.NormFloat64()*5), 15, 150)
		resis[i] = clip(sand*(50+rng.NormFloat64()*20)+l*(3+rng.NormFloat64()), 0.5, 200)

		phi := clip(sand*(0.15+rng.NormFloat64()*0.03), 0, 0.35)
		dens[i] = clip(2.65-phi*1.65, 2.0, 2.8)
		neut[i] = clip(phi+l*0.15+rng.NormFloat64()*0.02, 0, 0.45)
		sp[i] = clip(-60*sand+rng.NormFloat64()*5, -100, 20)
	}
	return depths, map[string][]float64{
		"GR": gr, "RESIS": resis, "DENS": dens, "NEUT": neut, "SP": sp,
	}
}

func main() {
	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)
	rng := rand.New(rand.NewSource(42))

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	user := entities.User{Username: "demo", Email: "demo@example.com", PasswordHash: string(hash), Role: "engineer"}
	if err := db.Where("username = ?", user.Username).FirstOrCreate(&user).Error; err != nil {
		log.Fatalf("seed user: %v", err)
	}
	log.Printf("user ready: demo / demo123")

	lat1, lon1, td1 := 31.6667, 6.0667, 3500.0
	well1 := entities.Well{
		Name: "HMD-101", FieldName: "Hassi Messaoud", Location: "Block 438",
		Latitude: &lat1, Longitude: &lon1, DepthTotal: &td1,
		Status: "active", Description: "Exploration well, Cambrian reservoir. Demo data.",
		UserID: user.ID,
	}
	lat2, lon2, td2 := 33.5, 5.95, 2800.0
	well2 := entities.Well{
		Name: "ORD-205", FieldName: "Oued Righ", Location: "Block 404",
		Latitude: &lat2, Longitude: &lon2, DepthTotal: &td2,
		Status: "drilling", Description: "Drilling in progress, Triassic objective.",
		UserID: user.ID,
	}
	for _, w := range []*entities.Well{&well1, &well2} {
		if err := db.Where("user_id = ? AND name = ?", w.UserID, w.Name).FirstOrCreate(w).Error; err != nil {
			log.Fatalf("seed well %s: %v", w.Name, err)
		}
	}
	log.Printf("wells ready: %s, %s", well1.Name, well2.Name)

	logs := logRepoImp.New(db)
	depths, curves := syntheticCurves(rng)
	total := 0
	for logType, values := range curves {
		rows := make([]entities.WellLog, len(depths))
		for i := range depths {
			rows[i] = entities.WellLog{
				WellID: well1.ID, LogType: logType,
				Depth: depths[i], Value: values[i],
				Unit: entities.LogTypeUnit(logType),
			}
		}
		if err := logs.ReplaceCurve(well1.ID, logType, rows); err != nil {
			log.Fatalf("seed curve %s: %v", logType, err)
		}
		total += len(rows)
	}
	log.Printf("%d log samples written for %s", total, well1.Name)

	// run the engine over a few windows so zone history is populated
	analysis := anaSvcImp.New(logs, anaRepoImp.New(db))
	for _, win := range [][2]float64{{2800, 2850}, {2850, 2950}, {2950, 3000}, {3000, 3100}} {
		from, to := win[0], win[1]
		z, _, err := analysis.Calculate(well1.ID, anaSvc.CalcRequest{DepthFrom: &from, DepthTo: &to})
		if err != nil {
			log.Fatalf("seed zone %.0f-%.0f: %v", from, to, err)
		}
		log.Printf("zone %.0f-%.0fm classified %s", from, to, z.ZoneType)
	}

	kb := kbSvcImp.New(kbRepoImp.New(db), nil)
	if _, n, err := kb.Ingest(
		"Quick-look log interpretation notes",
		"methods,cutoffs",
		"Shale volume from gamma ray uses a linear index between the clean-sand and shale baselines.\n"+
			"Density porosity assumes a sandstone matrix of 2.65 g/cc and a fluid density of 1.0 g/cc.\n"+
			"Archie water saturation with a=1, m=2, n=2 suits clean consolidated sandstones.\n"+
			"Typical quick-look cutoffs: Vshale under 0.5 and effective porosity above 0.08 flag a reservoir.\n",
		"",
	); err != nil {
		log.Fatalf("seed kb: %v", err)
	} else {
		log.Printf("reference note ingested (%d chunks)", n)
	}

	log.Printf("seed complete")
}

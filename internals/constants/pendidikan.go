package constants

// Jenjang pendidikan berurutan, sesuai pilihan pada formulir permohonan.
var PendidikanOptions = []string{
	"Tidak Sekolah",
	"Tidak Tamat SD/Sederajat",
	"Tamat SD/Sederajat",
	"Tamat SMP/Sederajat",
	"Tamat SMA/Sederajat",
	"D1 (Diploma 1)",
	"D2 (Diploma 2)",
	"D3 (Diploma 3/Ahli Madya)",
	"D4 (Diploma 4/Sarjana Terapan)",
	"S1 (Sarjana)",
	"S2 (Magister)",
	"S3 (Doktor)",
}

const (
	JenisKelaminLakiLaki  = "Laki-laki"
	JenisKelaminPerempuan = "Perempuan"
)

func ValidPendidikan(v string) bool {
	for _, p := range PendidikanOptions {
		if p == v {
			return true
		}
	}
	return false
}

func ValidJenisKelamin(v string) bool {
	return v == JenisKelaminLakiLaki || v == JenisKelaminPerempuan
}

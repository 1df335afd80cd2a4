package constants

// Daftar kecamatan terdampak di Kabupaten Banjar.
var Districts = []string{
	"Martapura",
	"Martapura Barat",
	"Martapura Timur",
	"Sungai Tabuk",
	"Karang Intan",
	"Astambul",
	"Simpang Empat",
	"Pengaron",
}

func IsValidDistrict(name string) bool {
	for _, d := range Districts {
		if d == name {
			return true
		}
	}
	return false
}

// Status rumah (kategori kerusakan hunian).
const (
	HouseFloodedHabitable = "Terendam (Bisa Ditempati)"
	HouseFloodedEvacuated = "Terendam (Mengungsi)"
	HouseSeverelyDamaged  = "Rusak Berat"
)

var HousingStatuses = []string{
	HouseFloodedHabitable,
	HouseFloodedEvacuated,
	HouseSeverelyDamaged,
}

func IsValidHousingStatus(s string) bool {
	for _, v := range HousingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Kelompok rentan yang bisa ditandai pada satu KK.
var VulnerableGroups = []string{"Balita", "Lansia", "Ibu Hamil", "Disabilitas"}

// Kebutuhan mendesak yang bisa diminta pada laporan banjir.
var ReportNeeds = []string{"Evakuasi", "Logistik", "Medis"}

func IsSubsetOf(values, allowed []string) bool {
	for _, v := range values {
		found := false
		for _, a := range allowed {
			if v == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

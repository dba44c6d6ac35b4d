package distance

// AnkaraSample is a small built-in set of water-sampling stops around
// central Ankara. The first entry is the depot every tour starts from.
func AnkaraSample() []Location {
	return []Location{
		{Name: "ASKI Genel Mudurlugu", Lat: 39.9415, Lng: 32.8540},
		{Name: "Kizilay", Lat: 39.9208, Lng: 32.8541},
		{Name: "Ulus", Lat: 39.9420, Lng: 32.8543},
		{Name: "Cankaya", Lat: 39.8880, Lng: 32.8620},
		{Name: "Kecioren", Lat: 39.9930, Lng: 32.8640},
		{Name: "Mamak", Lat: 39.9250, Lng: 32.9150},
		{Name: "Etimesgut", Lat: 39.9510, Lng: 32.6630},
		{Name: "Yenimahalle", Lat: 39.9690, Lng: 32.8000},
		{Name: "Golbasi", Lat: 39.7880, Lng: 32.8060},
		{Name: "Sincan", Lat: 39.9670, Lng: 32.5830},
	}
}

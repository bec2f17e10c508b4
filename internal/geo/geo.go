package geo

import "math"

const earthRadiusKm = 6371.0

// StorePoint é o que o localizador precisa de uma loja: id, nome e coordenadas.
type StorePoint struct {
	ID   uint
	Name string
	Lat  float64
	Lon  float64
}

// Distance calcula a distância em km pela fórmula de haversine.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*(math.Pi/180))*math.Cos(lat2*(math.Pi/180))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FindNearest devolve a loja mais próxima do ponto dado e a distância até
// ela. Empates ficam com a primeira loja na ordem da lista. O segundo
// retorno é falso quando a lista está vazia.
func FindNearest(stores []StorePoint, lat, lon float64) (StorePoint, float64, bool) {
	var nearest StorePoint
	minDist := math.Inf(1)
	found := false

	for _, s := range stores {
		d := Distance(lat, lon, s.Lat, s.Lon)
		if d < minDist {
			minDist = d
			nearest = s
			found = true
		}
	}

	return nearest, minDist, found
}

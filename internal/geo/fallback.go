package geo

// DefaultStoreID é usado quando o cliente não tem loja salva nem coordenadas.
const DefaultStoreID uint = 1

// FallbackStores é a lista fixa de unidades usada quando o banco está fora
// do ar ou nenhuma loja cadastrada tem coordenadas.
func FallbackStores() []StorePoint {
	return []StorePoint{
		{ID: 1, Name: "Mooca", Lat: -23.5670, Lon: -46.5997},
		{ID: 2, Name: "Tatuapé", Lat: -23.5420, Lon: -46.5610},
		{ID: 3, Name: "Ipiranga", Lat: -23.5900, Lon: -46.6110},
		{ID: 4, Name: "Santos", Lat: -23.9630, Lon: -46.3360},
	}
}

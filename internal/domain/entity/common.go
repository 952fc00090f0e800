package entity

// Monedas soportadas. Los montos nunca se convierten entre monedas.
const (
	CurrencyJPY = "JPY"
	CurrencyAED = "AED"
	CurrencyUSD = "USD"
)

// Regiones de operación.
const (
	LocationJapan = "japan"
	LocationDubai = "dubai"
)

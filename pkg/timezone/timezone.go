// Package timezone resuelve la hora local del negocio (America/Bogota).
package timezone

import "time"

// DefaultZone zona horaria del punto de venta.
const DefaultZone = "America/Bogota"

// fallback UTC-5 fijo: Colombia no usa horario de verano.
var fallback = time.FixedZone("UTC-05:00", -5*60*60)

// Now devuelve la hora actual en la zona indicada y el nombre de la zona
// efectivamente usada. Si la base de datos tz no está disponible en el
// contenedor se usa UTC-5 fijo.
func Now(zone string) (time.Time, string) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Now().In(fallback), "UTC-05:00 (fallback)"
	}
	return time.Now().In(loc), zone
}

// Stamp información de fecha/hora para respuestas HTTP.
type Stamp struct {
	ISO  string `json:"request_datetime"`
	Date string `json:"request_date"`
	Time string `json:"request_time"`
	Zone string `json:"request_tz"`
}

// NewStamp construye el timestamp de la petición.
func NewStamp(t time.Time, zone string) Stamp {
	return Stamp{
		ISO:  t.Format(time.RFC3339),
		Date: t.Format("2006-01-02"),
		Time: t.Format("15:04:05"),
		Zone: zone,
	}
}

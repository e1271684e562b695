package utils

import (
	"math"

	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodePoint converts a coordinate pair to a geohash string
func EncodePoint(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// RoutePointProximity summarizes crime incidents near a single route point
type RoutePointProximity struct {
	Index         int
	Geohash       string
	IncidentCount int
}

// SummarizeCrimeProximity counts, for each route point, the crime incidents
// within radiusKm of that point. The geohash identifies the point's cell for
// compact reporting.
func SummarizeCrimeProximity(routePoints []models.RoutePoint, incidents []models.CrimeIncident, radiusKm float64) []RoutePointProximity {
	summary := make([]RoutePointProximity, 0, len(routePoints))

	for i, rp := range routePoints {
		point := GeoPoint{Latitude: rp.Latitude, Longitude: rp.Longitude}

		count := 0
		for _, incident := range incidents {
			dist := CalculateDistance(point, GeoPoint{Latitude: incident.Latitude, Longitude: incident.Longitude})
			if dist <= radiusKm {
				count++
			}
		}

		summary = append(summary, RoutePointProximity{
			Index:         i,
			Geohash:       EncodePoint(rp.Latitude, rp.Longitude, 7),
			IncidentCount: count,
		})
	}

	return summary
}

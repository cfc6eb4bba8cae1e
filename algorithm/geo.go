package algorithm

import "math"

// 地球半径（公里）
const earthRadiusKm = 6371

// HaversineDistance 计算两点间的球面距离（公里）
// 使用 Haversine 公式，无状态，可并发调用
func HaversineDistance(from, to Location) float64 {
	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLng := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

package dataset

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/merrydance/vendorrec/algorithm"
)

// LoadCustomerLocations 加载顾客收货地址
// 经纬度为空或无法解析的行静默丢弃，这是评分引擎依赖的唯一清洗规则
func LoadCustomerLocations(path string) ([]algorithm.CustomerLocation, error) {
	var locations []algorithm.CustomerLocation
	dropped := 0

	err := forEachRow(path, func(r row) {
		customerID := r.get("customer_id")
		if customerID == "" {
			dropped++
			return
		}
		locationNumber, err := strconv.Atoi(r.get("location_number"))
		if err != nil {
			dropped++
			return
		}
		lat, err := strconv.ParseFloat(r.get("latitude"), 64)
		if err != nil {
			dropped++
			return
		}
		lng, err := strconv.ParseFloat(r.get("longitude"), 64)
		if err != nil {
			dropped++
			return
		}

		locations = append(locations, algorithm.CustomerLocation{
			CustomerID:     customerID,
			LocationNumber: locationNumber,
			Location:       algorithm.Location{Latitude: lat, Longitude: lng},
		})
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("file", path).
		Int("locations", len(locations)).
		Int("dropped", dropped).
		Msg("loaded customer locations")

	return locations, nil
}

package dataset

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/merrydance/vendorrec/algorithm"
)

// LoadVendorCatalog 加载商家目录
// 缺少 id 或经纬度的行丢弃；可选字段缺失时使用默认值
func LoadVendorCatalog(path string) (*algorithm.VendorCatalog, error) {
	catalog := algorithm.NewVendorCatalog()
	dropped := 0

	err := forEachRow(path, func(r row) {
		id, err := strconv.ParseInt(r.get("id"), 10, 64)
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

		catalog.Add(algorithm.Vendor{
			ID:                 id,
			Location:           algorithm.Location{Latitude: lat, Longitude: lng},
			Category:           r.get("vendor_category_en"),
			Rating:             r.floatOr("vendor_rating", 0),
			DeliveryCharge:     r.floatOr("delivery_charge", 0),
			ServingDistance:    r.floatOr("serving_distance", 10),
			IsOpen:             r.boolOr("is_open", true),
			DiscountPercentage: r.floatOr("discount_percentage", 0),
		})
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("file", path).
		Int("vendors", catalog.Len()).
		Int("dropped", dropped).
		Msg("loaded vendor catalog")

	return catalog, nil
}

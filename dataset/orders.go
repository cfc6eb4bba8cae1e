package dataset

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/merrydance/vendorrec/algorithm"
)

// LoadPreferenceIndex 从历史订单构建顾客偏好索引
// 订单引用的商家不在目录中时仍计入下单记录，只跳过品类统计
func LoadPreferenceIndex(path string, catalog *algorithm.VendorCatalog) (*algorithm.PreferenceIndex, error) {
	index := algorithm.NewPreferenceIndex()
	dropped := 0

	err := forEachRow(path, func(r row) {
		customerID := r.get("customer_id")
		if customerID == "" {
			dropped++
			return
		}
		vendorID, err := strconv.ParseInt(r.get("vendor_id"), 10, 64)
		if err != nil {
			dropped++
			return
		}
		index.RecordOrder(customerID, vendorID, catalog)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("file", path).
		Int("customers", index.Customers()).
		Int("dropped", dropped).
		Msg("loaded order history")

	return index, nil
}

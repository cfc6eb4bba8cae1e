package algorithm

// PreferenceIndex 顾客历史偏好索引
// 对历史订单做一次流式构建，之后只读
type PreferenceIndex struct {
	orderedVendors map[string]map[int64]struct{}
	categoryCount  map[string]map[string]int
}

// NewPreferenceIndex 创建空索引
func NewPreferenceIndex() *PreferenceIndex {
	return &PreferenceIndex{
		orderedVendors: make(map[string]map[int64]struct{}),
		categoryCount:  make(map[string]map[string]int),
	}
}

// RecordOrder 记录一笔历史订单
// 商家不在目录中时仍计入下单记录，但跳过品类统计（拿不到品类信息）
func (p *PreferenceIndex) RecordOrder(customerID string, vendorID int64, catalog *VendorCatalog) {
	vendors, ok := p.orderedVendors[customerID]
	if !ok {
		vendors = make(map[int64]struct{})
		p.orderedVendors[customerID] = vendors
	}
	vendors[vendorID] = struct{}{}

	vendor, ok := catalog.Get(vendorID)
	if !ok {
		return
	}

	counts, ok := p.categoryCount[customerID]
	if !ok {
		counts = make(map[string]int)
		p.categoryCount[customerID] = counts
	}
	counts[vendor.Category]++
}

// HasOrdered 顾客是否在该商家下过单
func (p *PreferenceIndex) HasOrdered(customerID string, vendorID int64) bool {
	_, ok := p.orderedVendors[customerID][vendorID]
	return ok
}

// CategoryCount 顾客在该品类下的历史订单数，未知顾客或品类返回 0
func (p *PreferenceIndex) CategoryCount(customerID, category string) int {
	return p.categoryCount[customerID][category]
}

// Customers 返回有历史订单的顾客数量
func (p *PreferenceIndex) Customers() int {
	return len(p.orderedVendors)
}

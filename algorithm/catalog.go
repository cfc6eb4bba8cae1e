package algorithm

// VendorCatalog 商家目录
// 加载阶段一次性构建，之后只读，可被多个 goroutine 并发访问
type VendorCatalog struct {
	vendors map[int64]Vendor
	ids     []int64 // 按加载顺序保存，保证评分遍历顺序稳定
}

// NewVendorCatalog 创建空目录
func NewVendorCatalog() *VendorCatalog {
	return &VendorCatalog{
		vendors: make(map[int64]Vendor),
	}
}

// Add 添加商家
// 重复 ID 时属性取最后一条记录，遍历位置保持首次出现的位置
func (c *VendorCatalog) Add(vendor Vendor) {
	if _, ok := c.vendors[vendor.ID]; !ok {
		c.ids = append(c.ids, vendor.ID)
	}
	c.vendors[vendor.ID] = vendor
}

// Get 按 ID 查找商家
func (c *VendorCatalog) Get(id int64) (Vendor, bool) {
	vendor, ok := c.vendors[id]
	return vendor, ok
}

// IDs 返回全部商家 ID（加载顺序）
func (c *VendorCatalog) IDs() []int64 {
	return c.ids
}

// Len 返回商家数量
func (c *VendorCatalog) Len() int {
	return len(c.vendors)
}

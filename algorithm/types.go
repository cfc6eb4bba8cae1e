// Package algorithm 提供商家推荐评分算法
// 该包独立于数据加载逻辑，便于测试和升级
package algorithm

// Location 地理位置（纬度/经度，单位：度）
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Vendor 商家信息
// 加载完成后不可变，由 VendorCatalog 独占持有
type Vendor struct {
	ID                 int64    `json:"id"`
	Location           Location `json:"location"`
	Category           string   `json:"category"`
	Rating             float64  `json:"rating"`
	DeliveryCharge     float64  `json:"delivery_charge"`
	ServingDistance    float64  `json:"serving_distance"` // 配送半径（公里）
	IsOpen             bool     `json:"is_open"`
	DiscountPercentage float64  `json:"discount_percentage"`
}

// CustomerLocation 顾客收货地址
// location_number 区分同一顾客的多个地址
type CustomerLocation struct {
	CustomerID     string   `json:"customer_id"`
	LocationNumber int      `json:"location_number"`
	Location       Location `json:"location"`
}

// ScoredVendor 带推荐分数的商家
// 分数只在同一个顾客地址分组内有意义
type ScoredVendor struct {
	VendorID int64   `json:"vendor_id"`
	Score    float64 `json:"score"`
	Distance float64 `json:"distance_km"` // 顾客到商家的距离（公里）
}

// Recommendation 一条推荐结果
type Recommendation struct {
	CustomerID     string  `json:"customer_id"`
	LocationNumber int     `json:"location_number"`
	VendorID       int64   `json:"vendor_id"`
	Score          float64 `json:"score"`
}

// RecommendConfig 推荐算法配置
// 零值字段由各算法填充自己的默认值
type RecommendConfig struct {
	MinScore      float64 `json:"min_score"`       // 绝对分数下限
	TopScoreRatio float64 `json:"top_score_ratio"` // 相对下限：分组最高分的比例
	MaxResults    int     `json:"max_results"`     // 每个分组最多推荐数量
}

// DefaultConfig 偏好推荐算法的默认配置
func DefaultConfig() RecommendConfig {
	return RecommendConfig{
		MinScore:      10,
		TopScoreRatio: 0.1,
		MaxResults:    10,
	}
}

// RecommendInput 推荐算法输入
// Catalog 与 History 在评分期间只读，可跨分组并发共享
type RecommendInput struct {
	CustomerID string           `json:"customer_id"`
	Location   Location         `json:"location"`
	Catalog    *VendorCatalog   `json:"-"`
	History    *PreferenceIndex `json:"-"`
	Config     RecommendConfig  `json:"config"`
}

package algorithm

import "context"

// VendorRecommender 商家推荐算法接口
// 便于后期升级算法实现
type VendorRecommender interface {
	// Recommend 为一个顾客地址推荐商家
	// 返回按推荐分数降序排列的商家列表
	Recommend(ctx context.Context, input RecommendInput) ([]ScoredVendor, error)

	// Name 返回算法名称
	Name() string

	// Version 返回算法版本
	Version() string
}

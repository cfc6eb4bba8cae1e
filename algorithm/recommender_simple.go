package algorithm

import (
	"context"
	"sort"
)

// SimpleRecommender V1 简单推荐算法
// 只看距离、评分、配送费和历史下单，不做配送半径过滤，
// 也不考虑品类偏好和营业状态，固定返回分数最高的前几名
type SimpleRecommender struct{}

// NewSimpleRecommender 创建简单推荐算法实例
func NewSimpleRecommender() *SimpleRecommender {
	return &SimpleRecommender{}
}

func (r *SimpleRecommender) Name() string {
	return "SimpleRecommender"
}

func (r *SimpleRecommender) Version() string {
	return "1.0.0"
}

// Recommend 为顾客地址推荐商家
func (r *SimpleRecommender) Recommend(ctx context.Context, input RecommendInput) ([]ScoredVendor, error) {
	config := input.Config
	if config.MaxResults <= 0 {
		config.MaxResults = 5
	}
	if config.MinScore <= 0 {
		config.MinScore = 3
	}

	var scored []ScoredVendor
	for _, id := range input.Catalog.IDs() {
		vendor, ok := input.Catalog.Get(id)
		if !ok {
			continue
		}

		dist := HaversineDistance(input.Location, vendor.Location)

		var score float64
		switch {
		case dist < 1:
			score += 10
		case dist < 5:
			score += 5
		case dist < 10:
			score += 2
		}

		score += vendor.Rating

		// 免配送费加分
		if vendor.DeliveryCharge == 0 {
			score += 3
		} else if vendor.DeliveryCharge < 1 {
			score += 1
		}

		// 历史下单加分
		if input.History.HasOrdered(input.CustomerID, vendor.ID) {
			score += 15
		}

		scored = append(scored, ScoredVendor{
			VendorID: id,
			Score:    score,
			Distance: dist,
		})
	}

	// 按分数降序；分数相同保持目录顺序
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	// 取前 N 名中超过最低分的商家
	if len(scored) > config.MaxResults {
		scored = scored[:config.MaxResults]
	}
	selected := make([]ScoredVendor, 0, len(scored))
	for _, sv := range scored {
		if sv.Score > config.MinScore {
			selected = append(selected, sv)
		}
	}

	return selected, nil
}

// 确保实现了接口
var _ VendorRecommender = (*SimpleRecommender)(nil)

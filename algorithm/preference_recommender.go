package algorithm

import (
	"context"
	"sort"
)

// 历史下单加分：下过单的商家优先级远高于其他信号
const repeatOrderBonus = 50

// PreferenceRecommender V2 偏好推荐算法
// 综合距离、评分、配送费、折扣、营业状态与历史偏好计算推荐分数
type PreferenceRecommender struct{}

// NewPreferenceRecommender 创建偏好推荐算法实例
func NewPreferenceRecommender() *PreferenceRecommender {
	return &PreferenceRecommender{}
}

func (r *PreferenceRecommender) Name() string {
	return "PreferenceRecommender"
}

func (r *PreferenceRecommender) Version() string {
	return "2.0.0"
}

// Recommend 为顾客地址推荐商家
func (r *PreferenceRecommender) Recommend(ctx context.Context, input RecommendInput) ([]ScoredVendor, error) {
	config := input.Config
	if config.MaxResults <= 0 {
		config.MaxResults = 10
	}
	if config.MinScore <= 0 {
		config.MinScore = 10
	}
	if config.TopScoreRatio <= 0 {
		config.TopScoreRatio = 0.1
	}

	var scored []ScoredVendor
	for _, id := range input.Catalog.IDs() {
		vendor, ok := input.Catalog.Get(id)
		if !ok {
			continue
		}

		dist := HaversineDistance(input.Location, vendor.Location)

		// 超出配送半径直接排除，这是唯一的硬过滤规则
		if dist > vendor.ServingDistance {
			continue
		}

		score := r.scoreVendor(input, vendor, dist)
		if score <= 0 {
			continue
		}

		scored = append(scored, ScoredVendor{
			VendorID: id,
			Score:    score,
			Distance: dist,
		})
	}

	// 按分数降序；分数相同保持目录顺序，保证结果可复现
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) == 0 {
		return scored, nil
	}

	// 两级下限：绝对下限与最高分比例取大者
	// 不同地址分组的分数量级差异很大，固定阈值无法同时适配
	minScore := config.MinScore
	if relative := scored[0].Score * config.TopScoreRatio; relative > minScore {
		minScore = relative
	}

	selected := make([]ScoredVendor, 0, config.MaxResults)
	for _, sv := range scored {
		if sv.Score < minScore {
			break
		}
		selected = append(selected, sv)
		if len(selected) >= config.MaxResults {
			break
		}
	}

	return selected, nil
}

// scoreVendor 计算单个商家的推荐分数，下限为 0
func (r *PreferenceRecommender) scoreVendor(input RecommendInput, vendor Vendor, dist float64) float64 {
	score := distanceBandScore(dist)

	// 评分加分
	score += vendor.Rating * 3

	// 配送费扣分
	score -= vendor.DeliveryCharge * 2

	// 折扣加分
	score += vendor.DiscountPercentage * 0.5

	// 休息中的商家大幅降权，但不直接排除
	if !vendor.IsOpen {
		score *= 0.1
	}

	// 历史下单加分
	if input.History.HasOrdered(input.CustomerID, vendor.ID) {
		score += repeatOrderBonus
	}

	// 品类偏好加分：同品类历史订单越多分数越高
	score += float64(input.History.CategoryCount(input.CustomerID, vendor.Category)) * 2

	if score < 0 {
		return 0
	}
	return score
}

// distanceBandScore 距离分段打分，越近分数越高
func distanceBandScore(dist float64) float64 {
	switch {
	case dist <= 1:
		return 20
	case dist <= 3:
		return 15
	case dist <= 5:
		return 10
	case dist <= 8:
		return 5
	default:
		return 1
	}
}

// 确保实现了接口
var _ VendorRecommender = (*PreferenceRecommender)(nil)

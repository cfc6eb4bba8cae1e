package algorithm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// 纬度偏移换算：0.01 度约 1.11 公里
func vendorAt(id int64, latOffset float64) Vendor {
	return Vendor{
		ID:              id,
		Location:        Location{Latitude: latOffset, Longitude: 0},
		Category:        "Pizza",
		ServingDistance: 100,
		IsOpen:          true,
	}
}

func newInput(catalog *VendorCatalog, index *PreferenceIndex, customerID string) RecommendInput {
	return RecommendInput{
		CustomerID: customerID,
		Location:   Location{Latitude: 0, Longitude: 0},
		Catalog:    catalog,
		History:    index,
	}
}

func TestPreferenceRecommenderBasics(t *testing.T) {
	r := NewPreferenceRecommender()
	require.Equal(t, "PreferenceRecommender", r.Name())
	require.Equal(t, "2.0.0", r.Version())
}

// 手算用例：同点商家，评分 5，无配送费无折扣，无历史订单
// 分数 = 20（距离段）+ 15（评分×3）= 35，下限 = max(10, 3.5) = 10，应被推荐
func TestPreferenceRecommenderWorkedExample(t *testing.T) {
	catalog := NewVendorCatalog()
	vendor := vendorAt(1, 0)
	vendor.Category = "A"
	vendor.Rating = 5
	catalog.Add(vendor)

	r := NewPreferenceRecommender()
	result, err := r.Recommend(context.Background(), newInput(catalog, NewPreferenceIndex(), "C1"))
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, int64(1), result[0].VendorID)
	require.InDelta(t, 35, result[0].Score, 1e-9)
}

// 超出配送半径的商家被硬过滤，顾客 5km 外、半径 0.0001km，结果为空
func TestPreferenceRecommenderServingDistanceFilter(t *testing.T) {
	catalog := NewVendorCatalog()
	vendor := vendorAt(1, 0)
	vendor.Rating = 5
	vendor.ServingDistance = 0.0001
	catalog.Add(vendor)

	input := newInput(catalog, NewPreferenceIndex(), "C5")
	input.Location = Location{Latitude: 0.045, Longitude: 0} // 约 5km

	r := NewPreferenceRecommender()
	result, err := r.Recommend(context.Background(), input)
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestPreferenceRecommenderDistanceBands(t *testing.T) {
	testCases := []struct {
		latOffset float64
		want      float64
	}{
		{0.005, 20}, // 约 0.56km
		{0.02, 15},  // 约 2.2km
		{0.04, 10},  // 约 4.4km
		{0.06, 5},   // 约 6.7km
		{0.1, 1},    // 约 11.1km
	}

	r := NewPreferenceRecommender()
	for _, tc := range testCases {
		catalog := NewVendorCatalog()
		catalog.Add(vendorAt(1, tc.latOffset))

		input := newInput(catalog, NewPreferenceIndex(), "C1")
		input.Config = RecommendConfig{MinScore: 0.5, TopScoreRatio: 0.001, MaxResults: 10}

		result, err := r.Recommend(context.Background(), input)
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.InDelta(t, tc.want, result[0].Score, 1e-9)
	}
}

// 两级下限：绝对下限 10 生效
func TestPreferenceRecommenderAbsoluteCutoff(t *testing.T) {
	catalog := NewVendorCatalog()
	catalog.Add(vendorAt(1, 0)) // 下过单：20 + 50 + 2 = 72

	v2 := vendorAt(2, 0.02) // 15 >= 10，保留
	v2.Category = "Burgers"
	catalog.Add(v2)

	v3 := vendorAt(3, 0.1) // 1 + 2*3 = 7 < 10，丢弃
	v3.Category = "Burgers"
	v3.Rating = 2
	catalog.Add(v3)

	index := NewPreferenceIndex()
	index.RecordOrder("C1", 1, catalog)

	r := NewPreferenceRecommender()
	result, err := r.Recommend(context.Background(), newInput(catalog, index, "C1"))
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, int64(1), result[0].VendorID)
	require.InDelta(t, 72, result[0].Score, 1e-9)
	require.Equal(t, int64(2), result[1].VendorID)
}

// 两级下限：最高分的 10% 超过绝对下限时生效
func TestPreferenceRecommenderRelativeCutoff(t *testing.T) {
	catalog := NewVendorCatalog()
	catalog.Add(vendorAt(1, 0))

	v2 := vendorAt(2, 0.02) // 15 >= 13，保留
	v2.Category = "Burgers"
	catalog.Add(v2)

	v3 := vendorAt(3, 0.02) // 15 - 3 = 12 < 13，虽然超过绝对下限仍丢弃
	v3.Category = "Burgers"
	v3.DeliveryCharge = 1.5
	catalog.Add(v3)

	// 顾客从商家 1 下过 30 单：20 + 50 + 60 = 130，下限 = 13
	index := NewPreferenceIndex()
	for i := 0; i < 30; i++ {
		index.RecordOrder("C1", 1, catalog)
	}

	r := NewPreferenceRecommender()
	result, err := r.Recommend(context.Background(), newInput(catalog, index, "C1"))
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, int64(1), result[0].VendorID)
	require.InDelta(t, 130, result[0].Score, 1e-9)
	require.Equal(t, int64(2), result[1].VendorID)
}

// 每个分组最多 10 条，平分时保持目录顺序
func TestPreferenceRecommenderCapAndStableOrder(t *testing.T) {
	catalog := NewVendorCatalog()
	for id := int64(101); id <= 112; id++ {
		catalog.Add(vendorAt(id, 0.005)) // 全部 20 分
	}

	r := NewPreferenceRecommender()
	result, err := r.Recommend(context.Background(), newInput(catalog, NewPreferenceIndex(), "C1"))
	require.NoError(t, err)
	require.Len(t, result, 10)
	for i, sv := range result {
		require.Equal(t, int64(101+i), sv.VendorID)
	}
}

// 评分单调性：只提高评分，分数和名次都不会变差
func TestPreferenceRecommenderRatingMonotonic(t *testing.T) {
	r := NewPreferenceRecommender()

	score := func(rating float64) float64 {
		catalog := NewVendorCatalog()
		v := vendorAt(1, 0)
		v.Rating = rating
		catalog.Add(v)
		result, err := r.Recommend(context.Background(), newInput(catalog, NewPreferenceIndex(), "C1"))
		require.NoError(t, err)
		require.Len(t, result, 1)
		return result[0].Score
	}
	require.GreaterOrEqual(t, score(4), score(2))

	// 名次：低分商家提高评分后反超
	catalog := NewVendorCatalog()
	a := vendorAt(1, 0)
	a.Rating = 3
	catalog.Add(a)
	b := vendorAt(2, 0)
	b.Rating = 5
	catalog.Add(b)

	result, err := r.Recommend(context.Background(), newInput(catalog, NewPreferenceIndex(), "C1"))
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, int64(2), result[0].VendorID)
}

// 休息中的商家整体降权到 10%，但不被排除
func TestPreferenceRecommenderClosedVendorSuppressed(t *testing.T) {
	catalog := NewVendorCatalog()
	open := vendorAt(1, 0)
	open.Rating = 5
	catalog.Add(open)

	closed := vendorAt(2, 0)
	closed.Rating = 5
	closed.IsOpen = false
	catalog.Add(closed)

	input := newInput(catalog, NewPreferenceIndex(), "C1")
	input.Config = RecommendConfig{MinScore: 0.5, TopScoreRatio: 0.001, MaxResults: 10}

	r := NewPreferenceRecommender()
	result, err := r.Recommend(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, int64(1), result[0].VendorID)
	require.InDelta(t, result[0].Score*0.1, result[1].Score, 1e-9)
	require.Less(t, result[1].Score, result[0].Score)
}

// 历史下单加分发生在营业状态降权之后：休息中的老店仍能浮出
func TestPreferenceRecommenderClosedVendorCanStillSurface(t *testing.T) {
	catalog := NewVendorCatalog()
	closed := vendorAt(1, 0)
	closed.Rating = 5
	closed.IsOpen = false
	catalog.Add(closed)

	index := NewPreferenceIndex()
	index.RecordOrder("C1", 1, catalog)

	r := NewPreferenceRecommender()
	result, err := r.Recommend(context.Background(), newInput(catalog, index, "C1"))
	require.NoError(t, err)
	require.Len(t, result, 1)
	// (20 + 15) * 0.1 + 50 + 2 = 55.5
	require.InDelta(t, 55.5, result[0].Score, 1e-9)
}

// 下过单的商家比完全相同的商家至少高 50 分
func TestPreferenceRecommenderRepeatOrderDominance(t *testing.T) {
	catalog := NewVendorCatalog()
	a := vendorAt(1, 0)
	a.Rating = 5
	catalog.Add(a)
	b := vendorAt(2, 0)
	b.Rating = 5
	catalog.Add(b)

	index := NewPreferenceIndex()
	index.RecordOrder("C1", 1, catalog)

	r := NewPreferenceRecommender()
	result, err := r.Recommend(context.Background(), newInput(catalog, index, "C1"))
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, int64(1), result[0].VendorID)
	require.GreaterOrEqual(t, result[0].Score-result[1].Score, 50.0)
}

// 相同输入两次运行结果完全一致
func TestPreferenceRecommenderDeterministic(t *testing.T) {
	catalog := NewVendorCatalog()
	for id := int64(1); id <= 20; id++ {
		v := vendorAt(id, float64(id)*0.003)
		v.Rating = float64(id % 5)
		catalog.Add(v)
	}
	index := NewPreferenceIndex()
	index.RecordOrder("C1", 7, catalog)

	r := NewPreferenceRecommender()
	first, err := r.Recommend(context.Background(), newInput(catalog, index, "C1"))
	require.NoError(t, err)
	second, err := r.Recommend(context.Background(), newInput(catalog, index, "C1"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

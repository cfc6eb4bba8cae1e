// Package batch 批量推荐任务编排
package batch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/merrydance/vendorrec/algorithm"
)

// Runner 对全部顾客地址执行一轮推荐
// 商家目录与偏好索引在运行前构建完毕，运行期间只读，分组之间无共享可变状态
type Runner struct {
	catalog     *algorithm.VendorCatalog
	history     *algorithm.PreferenceIndex
	recommender algorithm.VendorRecommender
	config      algorithm.RecommendConfig
	workers     int
}

// NewRunner 创建批量推荐执行器，workers 小于等于 0 时退化为单协程
func NewRunner(
	catalog *algorithm.VendorCatalog,
	history *algorithm.PreferenceIndex,
	recommender algorithm.VendorRecommender,
	config algorithm.RecommendConfig,
	workers int,
) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		catalog:     catalog,
		history:     history,
		recommender: recommender,
		config:      config,
		workers:     workers,
	}
}

// Run 为每个顾客地址生成推荐
// 各分组结果写入按输入顺序索引的位置再展平，输出与并发度无关，可逐字节复现
func (r *Runner) Run(ctx context.Context, locations []algorithm.CustomerLocation) ([]algorithm.Recommendation, error) {
	groups := make([][]algorithm.Recommendation, len(locations))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, loc := range locations {
		i, loc := i, loc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			scored, err := r.recommender.Recommend(ctx, algorithm.RecommendInput{
				CustomerID: loc.CustomerID,
				Location:   loc.Location,
				Catalog:    r.catalog,
				History:    r.history,
				Config:     r.config,
			})
			if err != nil {
				return fmt.Errorf("recommend for %s X %d: %w", loc.CustomerID, loc.LocationNumber, err)
			}

			group := make([]algorithm.Recommendation, 0, len(scored))
			for _, sv := range scored {
				group = append(group, algorithm.Recommendation{
					CustomerID:     loc.CustomerID,
					LocationNumber: loc.LocationNumber,
					VendorID:       sv.VendorID,
					Score:          sv.Score,
				})
			}
			groups[i] = group
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var recommendations []algorithm.Recommendation
	for _, group := range groups {
		recommendations = append(recommendations, group...)
	}

	log.Info().
		Str("algorithm", r.recommender.Name()).
		Int("locations", len(locations)).
		Int("recommendations", len(recommendations)).
		Msg("batch recommendation finished")

	return recommendations, nil
}

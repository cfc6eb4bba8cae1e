package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/merrydance/vendorrec/algorithm"
)

// submissionHeader 提交文件表头
var submissionHeader = []string{"CID X LOC_NUM X VENDOR", "target"}

// SubmissionKey 拼接提交文件的行键
// 格式："{customer_id} X {location_number} X {vendor_id}"，X 两侧各一个空格
func SubmissionKey(rec algorithm.Recommendation) string {
	return fmt.Sprintf("%s X %d X %d", rec.CustomerID, rec.LocationNumber, rec.VendorID)
}

// WriteSubmission 按提交格式写出推荐结果，target 恒为 1
func WriteSubmission(path string, recommendations []algorithm.Recommendation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(submissionHeader); err != nil {
		f.Close()
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	for _, rec := range recommendations {
		if err := w.Write([]string{SubmissionKey(rec), "1"}); err != nil {
			f.Close()
			return fmt.Errorf("write row of %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

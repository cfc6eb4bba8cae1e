// Package dataset 负责从分隔符文件加载输入关系并写出推荐结果
// 输入来自真实业务导出，允许脏数据：无法解析的行按行丢弃，不中断加载
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// row 一行带表头索引的记录
type row struct {
	header map[string]int
	fields []string
}

// get 按列名取值，列不存在或该行缺列时返回空串
func (r row) get(name string) string {
	idx, ok := r.header[name]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[idx])
}

// floatOr 解析浮点字段，为空或无法解析时返回默认值
func (r row) floatOr(name string, fallback float64) float64 {
	s := r.get(name)
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

// boolOr 解析布尔字段（0/1），为空或无法解析时返回默认值
func (r row) boolOr(name string, fallback bool) bool {
	s := r.get(name)
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return n != 0
}

// forEachRow 逐行读取带表头的 CSV 文件并回调
// 文件打不开或表头缺失是致命错误，数据行解析失败只跳过该行
func forEachRow(path string, fn func(r row)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headerFields, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}
	header := make(map[string]int, len(headerFields))
	for i, name := range headerFields {
		header[strings.TrimSpace(name)] = i
	}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// 跳过无法解析的行
			continue
		}
		fn(row{header: header, fields: fields})
	}

	return nil
}

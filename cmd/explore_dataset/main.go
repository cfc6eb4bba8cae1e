package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
)

// 跑批前快速检查输入文件：大小、列名、示例行
func main() {
	files := []string{
		"Train/vendors.csv",
		"Train/orders.csv",
		"Test/test_locations.csv",
	}
	if len(os.Args) > 1 {
		files = os.Args[1:]
	}

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("跳过 %s: %v", path, err)
			continue
		}
		fmt.Printf("%s: %.1fMB\n", path, float64(info.Size())/1024/1024)

		f, err := os.Open(path)
		if err != nil {
			log.Printf("无法打开文件 %s: %v", path, err)
			continue
		}

		reader := csv.NewReader(f)
		header, err := reader.Read()
		if err != nil {
			log.Printf("无法读取表头 %s: %v", path, err)
			f.Close()
			continue
		}
		fmt.Printf("  列: %v\n", head(header, 5))

		if sample, err := reader.Read(); err == nil {
			fmt.Printf("  示例: %v\n", head(sample, 3))
		}
		fmt.Println()
		f.Close()
	}
}

func head(fields []string, n int) []string {
	if len(fields) > n {
		return fields[:n]
	}
	return fields
}

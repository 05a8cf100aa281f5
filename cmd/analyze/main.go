package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/supportbot/copilot-go/internal/analyzer"
	"github.com/supportbot/copilot-go/internal/model"
)

func main() {
	seed := flag.Uint64("seed", 0, "固定随机种子（0 表示不固定）")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, flag.Args(), *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run 分析参数中的查询（无参数时读 stdin），以 JSON 输出结果
func run(stdin io.Reader, stdout io.Writer, args []string, seed uint64) error {
	query := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("读取输入失败: %w", err)
		}
		query = strings.TrimSpace(string(data))
	}

	var opts []analyzer.Option
	if seed != 0 {
		opts = append(opts, analyzer.WithRandomSource(analyzer.NewSeededSource(seed)))
	}
	result := analyzer.New(opts...).BuildAnalysis(query)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(model.ChatResponse{
		Query:          query,
		AnalysisResult: result,
		AgentsUsed:     analyzer.Stages(),
	})
}

package core

import (
	"context"

	"github.com/textops/recontext/internal/search"
)

type MockLLM struct {
	Response string
	Err      error
	Calls    int
	Prompts  []string
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

type MockSearcher struct {
	Results []search.Result
	Err     error
	Calls   int
	Queries []string
	Nums    []int
}

func (m *MockSearcher) Search(ctx context.Context, query string, num int) ([]search.Result, error) {
	m.Calls++
	m.Queries = append(m.Queries, query)
	m.Nums = append(m.Nums, num)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

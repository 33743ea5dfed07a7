package llm

import (
	"fmt"
	"strings"
	"sync"
)

// 分析提示詞：要求繁體中文回覆、正常範圍、至少三項建議與一項風險
const analysisPromptTemplate = "你是一個專業的健康分析專家，請嚴格以繁體中文回答，不得使用英文或其他語言，" +
	"所有醫學名詞必須使用繁體中文（例如使用「收縮壓」代替「systolic blood pressure」，使用「舒張壓」代替「diastolic blood pressure」）。" +
	"請分析以下健檢資料並提供詳細建議：\n\n%s\n\n" +
	"請提供清晰的分析，包括每個指標是否正常（明確說明正常範圍，例如血壓正常範圍為90-120/60-80 mmHg，心率正常範圍為60-100 bpm），" +
	"並給出至少三項具體的健康建議（例如飲食調整、運動建議、醫療檢查）和至少一項潛在疾病風險（例如高血壓可能導致心血管疾病）。" +
	"所有回答必須是繁體中文。"

// 互動提示詞：帶入先前的對話內容與新的問題
const interactivePromptTemplate = "你是一個專業的健康分析專家，請嚴格以繁體中文回答，不得使用英文或其他語言，" +
	"所有醫學名詞必須使用繁體中文（例如使用「收縮壓」代替「systolic blood pressure」，使用「舒張壓」代替「diastolic blood pressure」）。" +
	"以下是先前的健檢資料和對話內容：\n\n%s\n\n" +
	"基於之前的健檢資料和上下文，回答以下問題並提供新的具體建議：\n\n%s\n\n" +
	"請避免重複之前的回應，確保建議清晰實用，並提供至少三項具體行動建議和至少一項潛在疾病風險。" +
	"所有回答必須是繁體中文。"

func AnalysisPrompt(healthData string) string {
	return fmt.Sprintf(analysisPromptTemplate, healthData)
}

func InteractivePrompt(context, query string) string {
	return fmt.Sprintf(interactivePromptTemplate, context, query)
}

// Memory is a conversation buffer: input/output pairs in arrival order.
// Safe for concurrent use; interactive sessions can be hit from the HTTP
// endpoint and the websocket channel at the same time.
type Memory struct {
	mu    sync.Mutex
	turns []turn
}

type turn struct {
	input  string
	output string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(input, output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, turn{input: input, output: output})
}

// Render flattens the buffer into prompt text.
func (m *Memory) Render() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sb strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("輸入: ")
		sb.WriteString(t.input)
		sb.WriteString("\n輸出: ")
		sb.WriteString(t.output)
	}
	return sb.String()
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var apiKey = os.Getenv("API_KEY")

// LLMDescribe authors a catalog description for an asset. It is part of the
// out-of-band rebuild (the tools CLI), never of the serving path: request-time
// fallback descriptions stay deterministic and offline.
func LLMDescribe(ctx context.Context, title, category string, tags []string) (string, error) {
	if apiKey == "" {
		return "", errors.New("missing api key")
	}

	llm, err := googleai.New(ctx, googleai.WithAPIKey(apiKey), googleai.WithDefaultModel("gemini-2.5-flash"))
	if err != nil {
		return "", fmt.Errorf("failed to create Google AI LLM: %w", err)
	}

	prompt := fmt.Sprintf(
		"あなたはストック画像サイトの編集者です。以下の素材に、80〜160文字の自然な日本語の説明文を1つ書いてください。"+
			"宣伝的になりすぎず、用途（資料・Webサイト・プレゼン等）が想像できるトーンにしてください。説明文のみを返してください。\n\n"+
			"タイトル: %s\nカテゴリ: %s\nタグ: %s",
		title,
		category,
		strings.Join(tags, ", "),
	)

	description, err := llms.GenerateFromSinglePrompt(ctx, llm, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate description from LLM: %w", err)
	}

	return strings.TrimSpace(description), nil
}

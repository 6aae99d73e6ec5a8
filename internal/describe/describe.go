// Package describe synthesizes fallback descriptions for assets whose
// authored description is missing or too short. Output is a pure function of
// the asset fields: the same asset always yields byte-identical text, so the
// generated copy is stable across rebuilds and safe to use in page metadata.
package describe

import (
	"strings"

	"gxprime/internal/models"
)

// minAuthoredLen is the rune length at which an authored description is used
// as-is instead of being replaced by generated text.
const minAuthoredLen = 40

// hashString accumulates h = h*31 + code over the input, wrapped to the
// unsigned 32-bit range. Must not change: the selected sentences depend on it.
func hashString(input string) uint32 {
	var h uint32
	for _, r := range input {
		h = h*31 + uint32(r)
	}
	return h
}

func pick(arr []string, seed uint32, offset int) string {
	return arr[(uint64(seed)+uint64(offset))%uint64(len(arr))]
}

var titlePunct = []string{
	"：", ":", "・", "、", ",", "。", ".", "!", "?", "(", ")",
	"（", "）", "【", "】", "[", "]", "「", "」", "『", "』",
}

// titleTokens extracts candidate subject words from a title: punctuation is
// replaced by spaces and only tokens of 2 to 10 runes survive.
func titleTokens(title string) []string {
	cleaned := title
	for _, p := range titlePunct {
		cleaned = strings.ReplaceAll(cleaned, p, " ")
	}

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		n := len([]rune(tok))
		if n >= 2 && n <= 10 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// themes are checked in priority order; the first keyword found in the
// asset's tags, category or title wins.
var themes = []struct {
	keyword string
	label   string
}{
	{"モビリティ", "次世代モビリティ"},
	{"未来都市", "未来都市"},
	{"エネルギー", "クリーンエネルギー"},
	{"脱炭素", "脱炭素"},
	{"宇宙", "宇宙・先端技術"},
	{"水中", "水中・環境技術"},
}

const defaultTheme = "GXコンセプト"

// Generate returns the authored description when it is long enough, and a
// deterministically generated one otherwise.
func Generate(asset models.Asset) string {
	raw := strings.TrimSpace(asset.Description)
	if len([]rune(raw)) >= minAuthoredLen {
		return raw
	}

	title := strings.TrimSpace(asset.Title)
	category := strings.TrimSpace(asset.Category)

	seedSource := asset.ID
	if seedSource == "" {
		seedSource = title
	}
	if seedSource == "" {
		seedSource = category
	}
	if seedSource == "" {
		seedSource = "gx"
	}
	seed := hashString(seedSource)

	subjectPhrase := ""
	if tokens := titleTokens(title); len(tokens) > 0 {
		subjectPhrase = "「" + pick(tokens, seed, 11) + "」を想起させる"
	}

	has := func(kw string) bool {
		for _, t := range asset.Tags {
			if strings.Contains(t, kw) {
				return true
			}
		}
		return strings.Contains(category, kw) || strings.Contains(title, kw)
	}

	theme := defaultTheme
	for _, t := range themes {
		if has(t.keyword) {
			theme = t.label
			break
		}
	}

	openings := []string{
		"本素材は" + subjectPhrase + "「" + theme + "」のビジョンを、資料やWebサイトで使いやすいトーンで表現したビジュアルです。",
		"GX（グリーントランスフォーメーション）の文脈を意識し、" + subjectPhrase + "「" + theme + "」の方向性を美しく整理した素材です。",
		"プレゼンテーションやWebサイトのキービジュアルとして、" + subjectPhrase + "「" + theme + "」の世界観を効果的に伝えることができます。",
	}

	details := []string{
		"要素を盛りすぎず、テキストや図表を重ねても視認性を損なわない、使い勝手の良い構成に仕上げています。",
		"適切な余白と視線の流れを計算しているため、スライドの扉絵やセクションの背景としても自然に馴染みます。",
		"背景としての静寂さと、主役としての存在感を両立させ、幅広いクリエイティブに対応可能です。",
	}

	useCases := []string{
		"企業の提案書や事業紹介、ピッチ資料のほか、LPのメインビジュアル、記事のサムネイルなど、未来志向の訴求に適しています。",
		"採用資料、社内説明、イベント等の告知物において、全体のトーンをプロフェッショナルに整えたい場面で活用いただけます。",
		"プレゼンテーションの表紙からプロダクト紹介の補助素材まで、クリーンな印象を与えたい様々な用途に最適です。",
	}

	gxContext := []string{
		"脱炭素やスマートシティ、持続可能な技術革新といったテーマと親和性が高く、抽象的な概念を視覚的に補完します。",
		"GX領域のプロジェクトにおいて、言葉だけでは伝わりにくい未来像を、共通言語としてのイメージで強力にサポートします。",
		"環境意識の高まりを反映したデザインで、サステナビリティに関する合意形成や意識啓発の補助素材として機能します。",
	}

	return pick(openings, seed, 1) +
		pick(details, seed, 2) +
		pick(useCases, seed, 3) +
		pick(gxContext, seed, 4)
}

package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hoikuplan/internal/domain"
)

// fieldSystemPrompt asks for one field's worth of plan text.
const fieldSystemPrompt = `あなたは経験豊富な保育士です。保育所の指導計画を書く手伝いをします。
与えられた年齢、キーワード、書類の種類から、指導計画の欄にそのまま書き込める文章を作成してください。

ルール:
1. 「〜する。」「〜を楽しむ。」のような指導計画の文体で書く
2. 2〜3文、合計120文字以内
3. 子どもの発達段階に合った内容にする
4. 前置き、見出し、箇条書き、マークダウンは使わない
5. 本文だけを出力する`

// weekSystemPrompt asks for a structured weekly plan.
const weekSystemPrompt = `あなたは経験豊富な保育士です。保育所の週案を作成します。
与えられた年齢とキーワードをもとに、月曜日から土曜日までの計画を立ててください。

次の形式のJSONオブジェクトだけを出力してください:
{
  "月": {"activity": "活動内容", "care": "配慮事項", "supplies": "準備物"},
  "火": {...},
  "水": {...},
  "木": {...},
  "金": {...},
  "土": {...}
}

ルール:
1. キーは曜日の一文字 (月 火 水 木 金 土)
2. 各値は1〜2文、60文字以内
3. 準備物がない日は空文字にする
4. JSON以外の文章は出力しない`

func buildFieldPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "年齢: %s\n", req.AgeGroup)
	fmt.Fprintf(&b, "書類: %s\n", docLabel(req.Doc))
	if item := strings.TrimSpace(req.Item); item != "" {
		fmt.Fprintf(&b, "記入欄: %s\n", item)
	}
	fmt.Fprintf(&b, "キーワード: %s\n", strings.TrimSpace(req.Keywords))
	return b.String()
}

func buildWeekPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "年齢: %s\n", req.AgeGroup)
	fmt.Fprintf(&b, "キーワード: %s\n", strings.TrimSpace(req.Keywords))
	return b.String()
}

func docLabel(kind domain.DocumentKind) string {
	if kind == "" {
		return "指導計画"
	}
	return kind.Label()
}

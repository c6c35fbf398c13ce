package services

import (
	"fmt"

	"wordgraph/domain/core/valueobjects"
)

// SystemPrompt is the system role sent with every completion request
const SystemPrompt = "You are a helpful assistant."

const (
	// RelatedTermCount is how many terms the one-level graph asks for
	RelatedTermCount = 10

	// ExpansionTermCount is how many terms each recursive expansion asks for
	ExpansionTermCount = 5
)

// relatedTermsPrompt asks for comparable terms in the query's own category
// (people for a person, universities for a university, ...), bare words only.
const relatedTermsPrompt = "テーマ「%[1]s」に関連する、または類似している単語やフレーズを%[2]d個リストアップしてください。" +
	"このとき、%[1]sがどういうものなのか（具体例：人名・組織・会社・大学など）について強く意識し、" +
	"同じ文脈で出てくる、比較対象になりうるものについては必ず列挙するようにしてください。" +
	"（具体例：大谷翔平であればアーロンジャッジ、筑波大学であれば東京大学、知識情報・図書館学類であれば情報メディア創成学類など）。" +
	"確実に、単語で答えてください。1行に1つずつ書き、説明は要りません。"

// BuildPrompt renders the user prompt for a term and a requested term count
func BuildPrompt(term valueobjects.Term, count int) string {
	return fmt.Sprintf(relatedTermsPrompt, term.String(), count)
}

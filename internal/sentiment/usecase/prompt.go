package usecase

import (
	"fmt"
	"strings"
)

// Placeholders the prompt template must carry. Substitution is plain string
// replacement; the analyzed text passes through verbatim.
const (
	placeholderText     = "{text}"
	placeholderKeywords = "{keywords}"
	placeholderType     = "{type}"
)

// defaultPromptTemplate instructs the model to judge targeting first and
// polarity second, with the two-category keyword schema and JSON-only output.
const defaultPromptTemplate = `You are a Vietnamese sentiment analysis expert. Analyze the text and determine if it directly targets the mentioned keywords with an opinion.

TEXT: "{text}"
KEYWORDS: {keywords}
TYPE: {type}

RULES:
1. TARGETING CHECK:
   - targeted = true: Text expresses DIRECT OPINION about the keywords
   - targeted = false: Text only mentions keywords without direct opinion

2. SENTIMENT (only if targeted = true):
   - positive: Praise, satisfaction, positive experience
   - negative: Criticism, complaints, negative experience
   - neutral: Mentions with no clear positive/negative opinion
   Only user-experience content carries sentiment; promotional posts, news
   reports and contextual mentions are neutral.

3. If targeted = false, always return sentiment = neutral and confidence <= 0.4

4. CONFIDENCE: 0.8-1.0 clear opinion, 0.5-0.7 weak opinion, <= 0.4 not targeted or unclear

5. KEYWORDS: extracted sentiment-bearing words, Vietnamese only, in exactly two lists: positive and negative

6. EXPLANATION: Vietnamese only, maximum 15 words

EXAMPLES:
TARGETED:
- "Vinfast xe tốt lắm" -> targeted=true, sentiment=positive
- "iPhone tệ quá" -> targeted=true, sentiment=negative
- "Samsung dùng bình thường" -> targeted=true, sentiment=neutral

NOT TARGETED:
- "Bạn tôi dùng Vinfast" -> targeted=false, sentiment=neutral
- "Nghe nói iPhone mới" -> targeted=false, sentiment=neutral

Return ONLY a JSON object, no markdown, no surrounding prose:
{
  "targeted": true,
  "sentiment": "positive",
  "confidence": 0.8,
  "keywords": {
    "positive": ["tốt"],
    "negative": []
  },
  "explanation": "Đánh giá tích cực về sản phẩm"
}`

// buildPrompt substitutes text, keywords and record type into template. A
// template missing any placeholder degrades to a minimal generic prompt with
// the same three fields instead of producing a broken instruction.
func buildPrompt(template, text string, keywords []string, recordType string) string {
	if template == "" {
		template = defaultPromptTemplate
	}
	joined := strings.Join(keywords, ", ")

	if !strings.Contains(template, placeholderText) ||
		!strings.Contains(template, placeholderKeywords) ||
		!strings.Contains(template, placeholderType) {
		return fmt.Sprintf(`Analyze sentiment for: %s
Keywords: %s
Type: %s
Return JSON with targeted, sentiment, confidence, keywords, explanation.`, text, joined, recordType)
	}

	out := strings.ReplaceAll(template, placeholderText, text)
	out = strings.ReplaceAll(out, placeholderKeywords, joined)
	out = strings.ReplaceAll(out, placeholderType, recordType)
	return out
}

// Package prompt renders the fixed prompt templates sent to the inference
// server. Templates are builtins; the orchestrator forwards whatever text it
// is given, so callers pick the template grade here.
package prompt

import (
	"bytes"
	"text/template"
)

type data struct {
	From string
	To   string
	Text string
}

var minimalTpl = template.Must(template.New("minimal").Parse(
	"Translate {{.From}} to {{.To}}:\n{{.Text}}"))

var instructionTpl = template.Must(template.New("instruction").Parse(
	"You are an expert professional translator specializing in {{.From}} to {{.To}} translation.\n\n" +
		"Instructions:\n" +
		"- Translate accurately while preserving context, tone, and cultural nuances\n" +
		"- Maintain the original formatting and structure\n" +
		"- For technical terms, use widely accepted translations\n" +
		"- For proper nouns, keep them as-is unless standard translations exist\n" +
		"- Return ONLY the translation, no explanations or notes\n\n" +
		"Text to translate:\n{{.Text}}"))

// Translate renders the minimal one-line translation prompt.
func Translate(from, to, text string) string {
	return render(minimalTpl, data{From: from, To: to, Text: text})
}

// Instruction renders the fully-formed expert-translator prompt.
func Instruction(from, to, text string) string {
	return render(instructionTpl, data{From: from, To: to, Text: text})
}

// Improve renders a text-improvement prompt in the target language itself,
// so the model answers in-language. Unknown languages get a generic English
// editor prompt.
func Improve(language, text string) string {
	body, ok := improveTemplates[language]
	if !ok {
		body = improveGeneric
	}
	return render(body, data{Text: text})
}

func render(tpl *template.Template, d data) string {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, d); err != nil {
		// Templates are static and data is plain strings; this cannot fail.
		return d.Text
	}
	return buf.String()
}

var improveGeneric = template.Must(template.New("improve_generic").Parse(
	"You are a professional text editor and improvement specialist. Please improve the following text to make it more natural, clear, and well-written. Fix any grammatical errors and enhance readability. Return only the improved text without explanations.\n\nText to improve:\n{{.Text}}"))

var improveTemplates = map[string]*template.Template{
	"Japanese": template.Must(template.New("improve_ja").Parse(
		"あなたは日本語の校正・文章改善のプロフェッショナルです。以下の指示に従ってテキストを改善してください：\n\n指示：\n- より自然で読みやすい日本語に改善\n- 文法的な誤りを修正\n- 表現をより洗練させる\n- 読み手にとって分かりやすくする\n- 改善した文章のみを返す（説明は不要）\n\n改善するテキスト：\n{{.Text}}")),
	"English": template.Must(template.New("improve_en").Parse(
		"You are a professional English editor and writing improvement specialist. Please improve the following text according to these instructions:\n\nInstructions:\n- Make the English more natural and fluent\n- Fix any grammatical errors\n- Enhance clarity and readability\n- Improve word choice and style\n- Return only the improved text (no explanations needed)\n\nText to improve:\n{{.Text}}")),
	"Chinese": template.Must(template.New("improve_zh").Parse(
		"您是专业的中文文本校对和改进专家。请按照以下指示改进文本：\n\n指示：\n- 使中文更加自然流畅\n- 修正语法错误\n- 提高表达的准确性和可读性\n- 优化用词和语言风格\n- 只返回改进后的文本（无需说明）\n\n需要改进的文本：\n{{.Text}}")),
	"Korean": template.Must(template.New("improve_ko").Parse(
		"당신은 한국어 교정 및 문장 개선 전문가입니다. 다음 지시사항에 따라 텍스트를 개선해주세요:\n\n지시사항:\n- 더 자연스럽고 읽기 쉬운 한국어로 개선\n- 문법적 오류 수정\n- 표현을 더 세련되게 만들기\n- 읽는 사람이 이해하기 쉽게 하기\n- 개선된 문장만 반환 (설명 불필요)\n\n개선할 텍스트:\n{{.Text}}")),
	"Spanish": template.Must(template.New("improve_es").Parse(
		"Eres un experto profesional en corrección y mejora de textos en español. Por favor, mejora el siguiente texto según estas instrucciones:\n\nInstrucciones:\n- Hacer el español más natural y fluido\n- Corregir errores gramaticales\n- Mejorar la claridad y legibilidad\n- Perfeccionar la elección de palabras y el estilo\n- Devolver solo el texto mejorado (no se necesitan explicaciones)\n\nTexto a mejorar:\n{{.Text}}")),
	"French": template.Must(template.New("improve_fr").Parse(
		"Vous êtes un expert professionnel en correction et amélioration de textes français. Veuillez améliorer le texte suivant selon ces instructions :\n\nInstructions :\n- Rendre le français plus naturel et fluide\n- Corriger les erreurs grammaticales\n- Améliorer la clarté et la lisibilité\n- Perfectionner le choix des mots et le style\n- Retourner uniquement le texte amélioré (aucune explication nécessaire)\n\nTexte à améliorer :\n{{.Text}}")),
	"German": template.Must(template.New("improve_de").Parse(
		"Sie sind ein professioneller Experte für deutsche Textkorrektur und -verbesserung. Bitte verbessern Sie den folgenden Text gemäß diesen Anweisungen:\n\nAnweisungen:\n- Das Deutsche natürlicher und flüssiger gestalten\n- Grammatikfehler korrigieren\n- Klarheit und Lesbarkeit verbessern\n- Wortwahl und Stil verfeinern\n- Nur den verbesserten Text zurückgeben (keine Erklärungen erforderlich)\n\nZu verbessernder Text:\n{{.Text}}")),
}

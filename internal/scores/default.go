// internal/scores/default.go
package scores

import (
	"fmt"

	"github.com/mwiater/ttsreport/internal/content"
)

// DefaultCriteria is the rubric used by the survey, in display order.
var DefaultCriteria = []Criterion{
	{
		Name:    "Natuurlijkheid",
		Meaning: "Hoe menselijk klinkt de stem?",
		Labels:  []string{"Zeer natuurlijk", "Natuurlijk", "Redelijk", "Onnatuurlijk", "Zeer onnatuurlijk"},
	},
	{
		Name:    "Verstaanbaarheid",
		Meaning: "Hoe goed is de spraak te begrijpen?",
		Labels:  []string{"Perfect verstaanbaar", "Goed", "Redelijk", "Moeilijk verstaanbaar", "Onverstaanbaar"},
	},
	{
		Name:    "Audio-kwaliteit",
		Meaning: "Technische geluidskwaliteit (ruis, artefacten)",
		Labels:  []string{"Uitstekend", "Goed", "Redelijk", "Matig", "Slecht"},
	},
	{
		Name:    "Stememotie",
		Meaning: "Hoe expressief en levendig is de stem?",
		Labels:  []string{"Zeer expressief", "Goed expressief", "Redelijk", "Minimale expressie", "Geen expressie"},
	},
	{
		Name:    "Algemene tevredenheid",
		Meaning: "Hoe tevreden is de luisteraar?",
		Labels:  []string{"Zeer tevreden", "Tevreden", "Gematigd tevreden", "Ontevreden", "Zeer ontevreden"},
	},
}

// DefaultSurvey describes the panel that produced the built-in scores.
var DefaultSurvey = Survey{
	Raters:   10,
	Sentence: "De snelle vos sprong behendig over de luie hond, terwijl de regen zachtjes tegen het raam tikte en in de verte het onweer steeds luider begon te rommelen, alsof de natuur zelf een indrukwekkende symfonie wilde spelen.",
}

func scoreRow(values ...int) map[string]int {
	row := make(map[string]int, len(values))
	for i, v := range values {
		row[DefaultCriteria[i].Name] = v
	}
	return row
}

func defaultModels() []Model {
	models := []Model{
		{
			Name:     "parler-tts-mini-multilingual-v1.1",
			AssetKey: "1",
			URL:      "https://huggingface.co/parler-tts/parler-tts-mini-multilingual-v1.1",
			Scores:   scoreRow(5, 4, 3, 4, 4),
		},
		{
			Name:     "speecht5_finetuned_facebook_voxpopuli_dutch",
			AssetKey: "2",
			URL:      "https://huggingface.co/Kodamn47/speecht5_finetuned_facebook_voxpopuli_dutch",
			Scores:   scoreRow(1, 3, 2, 1, 2),
		},
		{
			Name:     "training_tts_nl_v2",
			AssetKey: "3",
			URL:      "https://huggingface.co/procit008/training_tts_nl_v2",
			Scores:   scoreRow(2, 3, 4, 2, 3),
		},
		{
			Name:     "mms-tts-nld",
			AssetKey: "4",
			URL:      "https://huggingface.co/facebook/mms-tts-nld",
			Scores:   scoreRow(4, 4, 4, 3, 4),
		},
		{
			Name:     "OpenAI-TTS-1-hd",
			AssetKey: "5",
			URL:      "https://platform.openai.com/docs/guides/text-to-speech",
			Cloud:    true,
			Scores:   scoreRow(4, 5, 5, 5, 5),
		},
	}
	for i := range models {
		models[i].Description = content.ModelDescription(models[i].Name)
	}
	return models
}

// Default returns the built-in survey results. A validation failure here is a
// defect in the literal above, so it panics.
func Default() *Table {
	t, err := New(DefaultCriteria, defaultModels(), DefaultSurvey)
	if err != nil {
		panic(fmt.Sprintf("built-in score table is invalid: %v", err))
	}
	return t
}

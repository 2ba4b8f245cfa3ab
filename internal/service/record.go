package service

import (
	"strconv"
	"time"

	"persona-onboarding/internal/bank"
	"persona-onboarding/internal/domain"
	"persona-onboarding/internal/fortune"
)

// Campos fijos de la fila de resultados: 6 de perfil, 8 de calendario,
// 50 respuestas, 5 scores y 4 de bookkeeping.
const (
	answerSlots = bank.FullSize
	RowFields   = 6 + 8 + answerSlots + 5 + 4
)

// Defaults de bookkeeping de la fila recién emitida.
const (
	flagDefault    = "FALSE"
	creditsDefault = "3"
)

// BuildRow arma la fila de 73 campos en el orden exacto que consume el
// sink: write-once, el core nunca la vuelve a leer.
func BuildRow(profile domain.Profile, attrs fortune.Attributes, answers map[int]int, scores domain.Scores, issuedAt time.Time) []string {
	row := make([]string, 0, RowFields)

	row = append(row,
		profile.UserID,
		"", // Stripe_ID, lo completa otro proceso
		"", // LINE_ID, lo completa otro proceso
		profile.DOBString(),
		profile.BirthTime,
		profile.Gender,
	)

	row = append(row, attrs.Ordered()...)

	for position := 1; position <= answerSlots; position++ {
		if rating, ok := answers[position]; ok {
			row = append(row, strconv.Itoa(rating))
		} else {
			row = append(row, "")
		}
	}

	for _, score := range scores.Ordered() {
		row = append(row, strconv.FormatFloat(score, 'f', 1, 64))
	}

	row = append(row,
		issuedAt.Format("2006/01/02"),
		flagDefault,
		flagDefault,
		creditsDefault,
	)

	return row
}

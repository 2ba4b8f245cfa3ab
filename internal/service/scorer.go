package service

import (
	"fmt"
	"math"

	"persona-onboarding/internal/bank"
	"persona-onboarding/internal/domain"
)

// neutralScore es el valor asignado a un trait sin respuestas.
const neutralScore = 3.0

// ComputeScores promedia las respuestas por trait, invirtiendo items
// reversos (6 - rating), y redondea a un decimal. Puro: sin efectos ni
// dependencia del orden de acumulación.
func ComputeScores(answers map[int]int, b *bank.Bank) (domain.Scores, error) {
	sums := make(map[string]int, len(domain.TraitOrder))
	counts := make(map[string]int, len(domain.TraitOrder))

	for position, rating := range answers {
		q, err := b.Get(position)
		if err != nil {
			return domain.Scores{}, fmt.Errorf("resolve answered question: %w", err)
		}
		value := rating
		if q.IsReverse {
			value = domain.InvertRating(rating)
		}
		sums[q.Trait] += value
		counts[q.Trait]++
	}

	trait := func(t string) float64 {
		if counts[t] == 0 {
			return neutralScore
		}
		return round1(float64(sums[t]) / float64(counts[t]))
	}

	return domain.Scores{
		Openness:          trait(domain.TraitOpenness),
		Conscientiousness: trait(domain.TraitConscientiousness),
		Extraversion:      trait(domain.TraitExtraversion),
		Agreeableness:     trait(domain.TraitAgreeableness),
		Neuroticism:       trait(domain.TraitNeuroticism),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

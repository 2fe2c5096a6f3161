package corpus

import "focuseval/internal/sample"

// AnnotatorAgreement measures inter-annotator agreement over the samples whose
// ID is in ids. Samples sharing an ID are treated as independent annotations of
// the same underlying example; every unordered annotation pair counts, and a
// pair agrees when both annotations carry the same is_valid label. Returns
// agreements/totalPairs, or 0 when no ID has at least two annotations.
func (s *Store) AnnotatorAgreement(ids []string) (float64, error) {
	samples, _, err := s.Load(LoadOptions{})
	if err != nil {
		return 0, err
	}
	return Agreement(samples, ids), nil
}

// Agreement computes pairwise agreement over an in-memory sample set.
func Agreement(samples []sample.Sample, ids []string) float64 {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	byID := map[string][]bool{}
	for _, smp := range samples {
		if !wanted[smp.ID] {
			continue
		}
		byID[smp.ID] = append(byID[smp.ID], smp.IsValid)
	}

	totalPairs := 0
	agreements := 0
	for _, labels := range byID {
		n := len(labels)
		if n < 2 {
			continue
		}
		valid := 0
		for _, label := range labels {
			if label {
				valid++
			}
		}
		invalid := n - valid
		totalPairs += n * (n - 1) / 2
		agreements += valid*(valid-1)/2 + invalid*(invalid-1)/2
	}
	if totalPairs == 0 {
		return 0
	}
	return float64(agreements) / float64(totalPairs)
}

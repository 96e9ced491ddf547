package catalog

import "math/rand"

// SelectNext picks one question uniformly at random from candidates,
// excluding any whose id appears in previous. The second return is false
// when every candidate has already been served. Each call is independent;
// session continuity lives entirely in the caller's previous list.
func SelectNext(candidates []Question, previous []int) (Question, bool) {
	served := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		served[id] = struct{}{}
	}

	eligible := make([]Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := served[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}

	if len(eligible) == 0 {
		return Question{}, false
	}
	return eligible[rand.Intn(len(eligible))], true
}

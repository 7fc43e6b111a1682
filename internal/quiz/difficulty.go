package quiz

// Distribution is the target count of questions per difficulty tier.
// The bracket table is expressed over 10 questions; requested counts
// other than 10 are scaled proportionally with ScaleTo.
type Distribution struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

func (d Distribution) Total() int {
	return d.Easy + d.Medium + d.Hard
}

// DistributionFor picks the difficulty bracket for a user's rolling average.
// The thresholds are exact: 80 and 60 belong to the higher bracket, and a
// user with no quiz history always gets the balanced baseline.
func DistributionFor(averageScore float64, totalQuizzes int) Distribution {
	if totalQuizzes == 0 {
		return Distribution{Easy: 3, Medium: 4, Hard: 3}
	}
	switch {
	case averageScore >= 80:
		return Distribution{Easy: 1, Medium: 3, Hard: 6}
	case averageScore >= 60:
		return Distribution{Easy: 2, Medium: 5, Hard: 3}
	default:
		return Distribution{Easy: 5, Medium: 4, Hard: 1}
	}
}

// ScaleTo scales the distribution to n questions, keeping the proportions.
// Largest remainders win the leftover slots; ties resolve easy, medium,
// hard, in that order.
func (d Distribution) ScaleTo(n int) Distribution {
	if n <= 0 {
		return Distribution{}
	}
	total := d.Total()
	if total == 0 || n == total {
		return d
	}

	counts := [3]int{d.Easy, d.Medium, d.Hard}
	var scaled [3]int
	var remainders [3]float64
	assigned := 0

	for i, c := range counts {
		exact := float64(c) * float64(n) / float64(total)
		scaled[i] = int(exact)
		remainders[i] = exact - float64(scaled[i])
		assigned += scaled[i]
	}

	for assigned < n {
		best := -1
		for i := range remainders {
			if best == -1 || remainders[i] > remainders[best] {
				best = i
			}
		}
		scaled[best]++
		remainders[best] = -1
		assigned++
	}

	return Distribution{Easy: scaled[0], Medium: scaled[1], Hard: scaled[2]}
}

package game

// EvaluateInfluence compares the observer's influence and coins with the
// strongest live opponent. A card counts for two coins.
func EvaluateInfluence(v View) float64 {
	if v.Observer < 0 || v.Observer >= len(v.Players) {
		panic("evaluation needs a seated observer")
	}
	if v.Winner != NoPlayer {
		if v.Winner == v.Observer {
			return 1
		}
		return -1
	}
	me := v.Players[v.Observer]
	if me.Eliminated {
		return -1
	}

	best := 0.0
	for _, p := range v.Players {
		if p.Seat == v.Observer || p.Eliminated {
			continue
		}
		best = max(best, strength(p))
	}
	return normalize(strength(me), best)
}

func strength(p PlayerView) float64 {
	return float64(2*p.Influence + p.Coins)
}

func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}

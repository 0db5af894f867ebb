package domain

const (
	// MaxRound es el último round con tasa definida.
	MaxRound = 100
	// RewardWindowDays es la cantidad de días activos en los que un nodo recibe airdrop.
	RewardWindowDays = 50
)

// airdropRateByRound es la tabla de airdrop por round (1..100).
// Reservada para un esquema de recompensa por round; el cálculo diario usa la tabla por día activo.
var airdropRateByRound = [MaxRound + 1]float64{
	0,
	0.1, 0.1067, 0.11, 0.1167, 0.12,
	0.1267, 0.13, 0.1367, 0.14, 0.1467,
	0.1533, 0.1567, 0.1633, 0.17, 0.1767,
	0.1833, 0.19, 0.1967, 0.2033, 0.21,
	0.22, 0.2267, 0.2367, 0.2467, 0.2533,
	0.2633, 0.2733, 0.2833, 0.2933, 0.3033,
	0.3167, 0.3267, 0.34, 0.35, 0.3633,
	0.3767, 0.39, 0.4033, 0.42, 0.4333,
	0.45, 0.4667, 0.4833, 0.5, 0.52,
	0.5367, 0.5567, 0.5767, 0.5967, 0.62,
	0.64, 0.6633, 0.69, 0.7133, 0.74,
	0.7667, 0.7933, 0.82, 0.85, 0.88,
	0.91, 0.9433, 0.9767, 1.01, 1.0467,
	1.0833, 1.1233, 1.1633, 1.2033, 1.2467,
	1.29, 1.3367, 1.3833, 1.4333, 1.4833,
	1.5367, 1.59, 1.6467, 1.7067, 1.7667,
	1.83, 1.8933, 1.96, 2.03, 2.1033,
	2.1767, 2.2533, 2.3333, 2.4167, 2.5033,
	2.59, 2.6833, 2.7767, 2.8733, 2.9767,
	3.08, 3.19, 3.3, 3.4167, 3.5133,
}

// airdropRateByActiveDay es el airdrop por nodo según su día activo (1..50).
var airdropRateByActiveDay = [RewardWindowDays + 1]float64{
	0,
	0.2067, 0.2267, 0.2467, 0.2667, 0.2867,
	0.31, 0.3333, 0.36, 0.3867, 0.4133,
	0.4467, 0.4834, 0.5166, 0.5566, 0.5966,
	0.6434, 0.69, 0.74, 0.7933, 0.8533,
	0.9167, 0.9833, 1.0567, 1.1334, 1.2167,
	1.3033, 1.4033, 1.5067, 1.6133, 1.73,
	1.8533, 1.9867, 2.13, 2.2866, 2.45,
	2.6267, 2.8166, 3.02, 3.2367, 3.4734,
	3.7233, 3.99, 4.28, 4.5866, 4.92,
	5.2733, 5.65, 6.0567, 6.49, 6.93,
}

// RateForRound devuelve la tasa de airdrop del round k. Fuera de 1..100 devuelve 0.
func RateForRound(k int) float64 {
	if k < 1 || k > MaxRound {
		return 0
	}
	return airdropRateByRound[k]
}

// RateForActiveDay devuelve el airdrop por nodo en su día activo k. Fuera de 1..50 devuelve 0.
func RateForActiveDay(k int) float64 {
	if k < 1 || k > RewardWindowDays {
		return 0
	}
	return airdropRateByActiveDay[k]
}

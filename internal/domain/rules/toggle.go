package rules

// Toggle agrega v si no está y lo quita si está. No modifica set; el orden del
// resto se conserva y los agregados van al final. set se trata como conjunto:
// si trae v repetido se quitan todas las copias (normalizar antes con Unique).
func Toggle[T comparable](set []T, v T) []T {
	out := make([]T, 0, len(set)+1)
	found := false
	for _, x := range set {
		if x == v {
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

// Unique devuelve los valores de set sin repetidos, conservando la primera aparición.
func Unique[T comparable](set []T) []T {
	out := make([]T, 0, len(set))
	seen := make(map[T]struct{}, len(set))
	for _, x := range set {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// Contains indica si v está en set.
func Contains[T comparable](set []T, v T) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

// ToggleField aplica Toggle sobre la lista que field selecciona dentro de una copia de state.
//
//	sel = ToggleField(sel, func(s *entity.PromotionSelection) *[]string { return &s.Outlets }, "centro")
func ToggleField[S any, T comparable](state S, field func(*S) *[]T, v T) S {
	p := field(&state)
	*p = Toggle(*p, v)
	return state
}

// Package rules reúne las reglas puras compartidas por todas las pantallas del MIS:
// clasificación de stock, estado de recepción, resultado de controles de calidad,
// totales de línea y de documento, y selección múltiple.
//
// Ninguna función falla: una entrada numérica inválida (no parseable, NaN, ±Inf o
// negativa) se trata como cero.
package rules

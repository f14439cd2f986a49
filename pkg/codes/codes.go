// Package codes genera los códigos secuenciales de artículos del almacén.
package codes

import (
	"fmt"
	"strconv"
	"strings"
)

// Next devuelve el siguiente código de artículo a partir del último emitido.
// El formato es "SKX-n" donde X es la inicial de la categoría y n un consecutivo.
// Con previous vacío arranca la secuencia de la categoría en "SKX-1".
func Next(previous, category string) (string, error) {
	if previous == "" {
		if category == "" {
			return "", fmt.Errorf("codes: se requiere categoría para iniciar la secuencia")
		}
		initial := strings.ToUpper(category)[:1]
		previous = fmt.Sprintf("SK%s-0", initial)
	}
	prefix, numPart, ok := strings.Cut(previous, "-")
	if !ok {
		return "", fmt.Errorf("codes: código previo inválido %q", previous)
	}
	num, err := strconv.Atoi(numPart)
	if err != nil {
		return "", fmt.Errorf("codes: consecutivo inválido en %q: %w", previous, err)
	}
	return fmt.Sprintf("%s-%d", prefix, num+1), nil
}

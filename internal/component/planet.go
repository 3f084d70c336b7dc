// internal/component/planet.go
package component

// Planet — неподвижная планета в центре экрана
type Planet struct {
	X, Y        float64
	Radius      float64
	DisplaySize float64
}

// Circle возвращает круг коллизии планеты
func (p *Planet) Circle() Circle {
	return Circle{X: p.X, Y: p.Y, Radius: p.Radius}
}

// internal/component/visual.go
package component

// DustParticle — облачко пыли на месте отбитого астероида, сжимается до нуля за Lifetime тиков.
type DustParticle struct {
	Age      int
	Lifetime int
	W, H     float64 // исходный размер
}

// Size возвращает текущий размер: исходный * (1 - age/lifetime)
func (d *DustParticle) Size() (float64, float64) {
	k := 1 - float64(d.Age)/float64(d.Lifetime)
	if k < 0 {
		k = 0
	}
	return d.W * k, d.H * k
}

// Expired — пыль исчезает, когда возраст достиг срока жизни или размер выродился
func (d *DustParticle) Expired() bool {
	if d.Age >= d.Lifetime {
		return true
	}
	w, h := d.Size()
	return w <= 0 || h <= 0
}

// PlusOne — всплывающая надпись "+1"
type PlusOne struct {
	Age      int
	Lifetime int
	DriftY   float64 // смещение по Y за тик
}

// Expired сообщает, истёк ли срок жизни надписи
func (p *PlusOne) Expired() bool {
	return p.Age >= p.Lifetime
}

// Alpha — прозрачность для отрисовки, линейно падает к концу жизни
func (p *PlusOne) Alpha() float64 {
	a := 1 - float64(p.Age)/float64(p.Lifetime)
	if a < 0 {
		return 0
	}
	return a
}

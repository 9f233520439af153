package fighter

// DamageEffect is a pending hit from another fighter. ApplyDamageEffect
// consumes it; a consumed effect applied again does nothing.
type DamageEffect struct {
	Amount   int
	SourceID int
	Kind     AttackKind
	consumed bool
}

// NewDamageEffect builds an effect for a hit by attack.
func NewDamageEffect(a *Attack) *DamageEffect {
	return &DamageEffect{Amount: a.Damage, SourceID: a.OwnerID, Kind: a.Kind}
}

func (e *DamageEffect) Consumed() bool {
	return e.consumed
}

func (e *DamageEffect) consume() int {
	if e.consumed {
		return 0
	}
	amount := e.Amount
	e.Amount = 0
	e.consumed = true
	return amount
}

// NewProjectileDamage builds an effect for a hit by a live projectile.
func NewProjectileDamage(p Projectile) *DamageEffect {
	return &DamageEffect{Amount: p.Damage, SourceID: p.OwnerID, Kind: p.Kind}
}

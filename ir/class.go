package ir

// Class is a type descriptor standing in for a constructor. Super links
// form the inheritance table consulted by instance and subclass checks.
type Class struct {
	Name  string
	Super *Class
}

func NewClass(name string, super *Class) *Class {
	return &Class{Name: name, Super: super}
}

// DerivesFrom reports whether c is other or a (transitive) subclass of other.
func (c *Class) DerivesFrom(other *Class) bool {
	for x := c; x != nil; x = x.Super {
		if x == other {
			return true
		}
	}
	return false
}

// InstanceOf reports whether y is an object created from c or a subclass of c.
func (y *Node) InstanceOf(c *Class) bool {
	if y.Type != ObjectType || y.Class == nil {
		return false
	}
	return y.Class.DerivesFrom(c)
}

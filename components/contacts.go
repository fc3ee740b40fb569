package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TriggerContactsData remembers which trigger volumes overlapped last tick
type TriggerContactsData struct {
	Overlaps []*resolv.Object
}

func (c *TriggerContactsData) Contains(obj *resolv.Object) bool {
	for _, o := range c.Overlaps {
		if o == obj {
			return true
		}
	}
	return false
}

var TriggerContacts = donburi.NewComponentType[TriggerContactsData]()

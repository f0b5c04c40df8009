package corpus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/acquigo/pkg/model"
)

func TestRegistryAssignsStableIDs(t *testing.T) {
	reg := NewRegistry()

	a := &model.Speaker{Code: "CHI", Name: "Hlobohang", BirthDate: "2006-01-14"}
	b := &model.Speaker{Code: "CHI", Name: "Hlobohang", BirthDate: "2006-01-14"}
	c := &model.Speaker{Code: "CHI", Name: "Lerato", BirthDate: "2005-03-01"}

	u1 := reg.Resolve("Sesotho", a)
	u2 := reg.Resolve("Sesotho", b)
	u3 := reg.Resolve("Sesotho", c)

	assert.Equal(t, u1.ID, u2.ID)
	assert.NotEqual(t, u1.ID, u3.ID)
	assert.Equal(t, u1.ID, a.UniqueID)
	assert.Equal(t, u1.ID, b.UniqueID)

	require.Len(t, reg.All(), 2)
}

func TestRegistrySeparatesCorpora(t *testing.T) {
	reg := NewRegistry()

	a := &model.Speaker{Code: "MOT"}
	b := &model.Speaker{Code: "MOT"}

	u1 := reg.Resolve("Sesotho", a)
	u2 := reg.Resolve("Inuktitut", b)
	assert.NotEqual(t, u1.ID, u2.ID)
}

func TestRegistryConcurrentResolve(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sp := &model.Speaker{Code: "CHI", Name: "Hlobohang"}
			reg.Resolve("Sesotho", sp)
		}()
	}
	wg.Wait()

	assert.Len(t, reg.All(), 1)
}

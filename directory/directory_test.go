package directory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"employeedir/types"
)

func hired(t *testing.T, name string, number int, date string) *types.Employee {
	t.Helper()
	e, err := types.NewEmployeeDetails(name, number, date, "600111222", "staff@mail.com")
	require.NoError(t, err)
	return e
}

func names(employees []*types.Employee) (result []string) {
	for _, e := range employees {
		result = append(result, e.Name)
	}
	return
}

func TestDirectoryScenario(t *testing.T) {
	require := require.New(t)
	d := New()
	a := types.NewEmployee("A", 1)
	b := types.NewEmployee("B", 2)
	c := types.NewEmployee("C", 3)
	d.Append(a)
	d.Append(b)
	d.Append(c)

	require.Equal(3, d.Count())
	require.Equal(1, d.PositionOf(b))
	require.True(d.Remove(b))
	require.Equal(2, d.Count())
	require.Equal([]string{"A", "C"}, names(d.Employees()))
	require.Equal(-1, d.PositionOf(b))
	require.False(d.Remove(b))
}

func TestDirectoryRemoveByValue(t *testing.T) {
	require := require.New(t)
	d := New()
	d.Append(types.NewEmployee("A", 1))

	require.True(d.Remove(types.NewEmployee("A", 1)))
	require.True(d.IsEmpty())
	require.Nil(d.Head())
	require.Nil(d.Tail())
}

func TestDirectoryEmpty(t *testing.T) {
	require := require.New(t)
	d := New()

	require.True(d.IsEmpty())
	require.Nil(d.Head())
	require.Equal(-1, d.PositionOf(types.NewEmployee("A", 1)))
	require.False(d.NumberExists(1, nil))
}

func TestDirectoryNumberExists(t *testing.T) {
	require := require.New(t)
	d := New()
	a := types.NewEmployee("A", 1)
	d.Append(a)
	d.Append(types.NewEmployee("B", 2))

	require.True(d.NumberExists(1, nil))
	require.False(d.NumberExists(1, a))
	require.True(d.NumberExists(2, a))
	require.False(d.NumberExists(3, nil))
}

func TestDirectoryRemoveNode(t *testing.T) {
	require := require.New(t)
	d := New()
	first := d.Append(types.NewEmployee("A", 1))
	second := d.Append(types.NewEmployee("A", 1))

	require.True(d.RemoveNode(second))
	require.True(first.Valid())
	require.Equal(1, d.Count())
	require.Same(first.Value(), d.Tail().Value())
}

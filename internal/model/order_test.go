package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
    cases := []struct {
        from, to string
        ok       bool
    }{
        {StatusOpen, StatusReady, true},
        {StatusReady, StatusShipped, true},
        {StatusShipped, StatusPickedUp, true},
        {StatusPickedUp, StatusPickedUp, true},
        {"Bogus", "", false},
        {"", "", false},
    }
    for _, tc := range cases {
        next, ok := NextStatus(tc.from)
        assert.Equal(t, tc.ok, ok, "from %q", tc.from)
        assert.Equal(t, tc.to, next, "from %q", tc.from)
    }
}

func TestCartAddRemove(t *testing.T) {
    c := Cart{}
    c.Add(5)
    c.Add(5)
    c.Add(9)
    assert.Equal(t, Cart{5: 2, 9: 1}, c)

    c.Remove(5)
    assert.Equal(t, Cart{9: 1}, c)

    // 删除不存在的条目不报错
    c.Remove(404)
    assert.Equal(t, Cart{9: 1}, c)
}

func TestCartNormalize(t *testing.T) {
    c := Cart{1: 3, 2: 0, 3: -1}
    c.Normalize()
    assert.Equal(t, Cart{1: 3}, c)
}

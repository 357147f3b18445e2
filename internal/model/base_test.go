package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(1990, time.March, 15)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-03-15"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDateUnmarshalRejectsOtherLayouts(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/03/1990"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"1990-03-15T00:00:00Z"`), &d))
}

func TestDateNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestLifecycleValid(t *testing.T) {
	assert.True(t, LifecycleActive.Valid())
	assert.True(t, LifecycleInactive.Valid())
	assert.False(t, Lifecycle("eliminado").Valid())
	assert.False(t, Lifecycle("").Valid())
}

func TestReviewStateTerminal(t *testing.T) {
	assert.False(t, ReviewPending.Terminal())
	assert.True(t, ReviewReviewed.Terminal())
	assert.True(t, ReviewRejected.Terminal())
	assert.False(t, ReviewState("archivado").Terminal())
}

func TestBothOrNeither(t *testing.T) {
	now := time.Now()

	assert.True(t, bothOrNeither((*time.Time)(nil), (*time.Time)(nil)))
	assert.True(t, bothOrNeither(&now, &now))
	assert.False(t, bothOrNeither(&now, (*time.Time)(nil)))
	assert.False(t, bothOrNeither((*time.Time)(nil), &now))

	v := 1.5
	assert.False(t, bothOrNeither(&v, (*float64)(nil)))
	assert.True(t, bothOrNeither(&v, &v))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText(t *testing.T) {
	markup := `<div class="chapterheading">Genesis 1</div>
<ul class="versesblock">
  <li><a name="1"></a><span class="verse">1</span> In the beginning God created the heaven and the earth.</li>
  <li><span class="verse">2</span> And the earth was   without form.</li>
</ul>
<script>alert("x")</script>`

	text, err := HTMLToText(markup)
	require.NoError(t, err)

	assert.Equal(t, "Genesis 1\n\n1 In the beginning God created the heaven and the earth.\n\n2 And the earth was without form.", text)
	assert.NotContains(t, text, "alert")
}

func TestHTMLToTextPlain(t *testing.T) {
	text, err := HTMLToText("just words")
	require.NoError(t, err)
	assert.Equal(t, "just words", text)
}

package goquery_test

import (
	"testing"

	"github.com/fwojciec/mdarchive"
	"github.com/fwojciec/mdarchive/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_ResolveLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links and images", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<article>
<a href="/p/2">next</a>
<a href="../up">up</a>
<a href="https://other.example/x">abs</a>
<img src="img/a.png">
</article>`)
		require.NoError(t, err)

		require.NoError(t, doc.ResolveLinks("https://example.com/p/1/"))

		node, err := doc.Select("article")
		require.NoError(t, err)
		anchors := node.Find(func(n *mdarchive.Node) bool { return n.Tag == "a" })
		require.Len(t, anchors, 3)
		assert.Equal(t, "https://example.com/p/2", anchors[0].Attr("href"))
		assert.Equal(t, "https://example.com/p/up", anchors[1].Attr("href"))
		assert.Equal(t, "https://other.example/x", anchors[2].Attr("href"))

		imgs := node.Find(func(n *mdarchive.Node) bool { return n.Tag == "img" })
		require.Len(t, imgs, 1)
		assert.Equal(t, "https://example.com/p/1/img/a.png", imgs[0].Attr("src"))
	})

	t.Run("leaves fragments and non-HTTP links alone", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<p>
<a href="#top">top</a>
<a href="mailto:a@example.com">mail</a>
<a href="javascript:void(0)">js</a>
</p>`)
		require.NoError(t, err)

		require.NoError(t, doc.ResolveLinks("https://example.com/"))

		node, err := doc.Select("p")
		require.NoError(t, err)
		anchors := node.Find(func(n *mdarchive.Node) bool { return n.Tag == "a" })
		require.Len(t, anchors, 3)
		assert.Equal(t, "#top", anchors[0].Attr("href"))
		assert.Equal(t, "mailto:a@example.com", anchors[1].Attr("href"))
		assert.Equal(t, "javascript:void(0)", anchors[2].Attr("href"))
	})

	t.Run("rejects relative base URL", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<a href="/x">x</a>`)
		require.NoError(t, err)

		err = doc.ResolveLinks("/relative")

		assert.Equal(t, mdarchive.EINVALID, mdarchive.ErrorCode(err))
	})
}

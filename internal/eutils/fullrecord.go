// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/pdiddy/pubmetric/pkg/types"
)

// efetch returns full bibliographic records as Medline XML. Only the
// citation fields the author matcher needs are decoded.
type efetchArticleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string         `xml:"PMID"`
	Authors []efetchAuthor `xml:"Article>AuthorList>Author"`
}

type efetchAuthor struct {
	ValidYN      string `xml:"ValidYN,attr"`
	EqualContrib string `xml:"EqualContrib,attr"`
	LastName     string `xml:"LastName"`
	ForeName     string `xml:"ForeName"`
	Initials     string `xml:"Initials"`
}

// FetchFullRecords retrieves the full bibliographic record for every paper
// in the cursor's result set. efetch has no JSON mode for pubmed, so this
// call overrides retmode to XML.
func (c *Client) FetchFullRecords(ctx context.Context, cur types.ResultCursor) ([]types.PublicationRecord, error) {
	params := c.cursorParams(cur)
	params.Set("retmode", "XML")

	resp, err := c.get(ctx, efetchBase, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var set efetchArticleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing efetch response: %w", err)
	}

	records := make([]types.PublicationRecord, 0, len(set.Articles))
	for _, a := range set.Articles {
		rec := types.PublicationRecord{PMID: a.Citation.PMID}
		for _, au := range a.Citation.Authors {
			rec.Authors = append(rec.Authors, types.FullAuthor{
				LastName: au.LastName,
				ForeName: au.ForeName,
				Initials: au.Initials,
				// Presence of the attribute is the marker; PubMed
				// writes EqualContrib="Y" when it applies.
				EqualContrib: au.EqualContrib != "",
			})
		}
		records = append(records, rec)
	}
	return records, nil
}

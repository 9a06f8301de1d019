// Package query assembles the dashboard's SQL: latest-snapshot views, filter predicates,
// join requirements, per-dimension aggregate charts, the paginated search and the
// top-games lists. It renders statements only and never touches a connection.
package query

import (
	"github.com/doug-martin/goqu/v9"
	// registers the postgres dialect
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

var dialect = goqu.Dialect("postgres")

var (
	gameTable            = goqu.T("game")
	gameAppID            = gameTable.Col("app_id")
	gameName             = gameTable.Col("name")
	gameReleased         = gameTable.Col("released")
	gameReleaseDate      = gameTable.Col("release_date")
	gamePrice            = gameTable.Col("price")
	gameShortDescription = gameTable.Col("short_description")

	genreName = goqu.T("genre").Col("name")
	tagName   = goqu.T("tag").Col("name")
)

// Statement is a rendered query with positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

func render(ds *goqu.SelectDataset) (Statement, error) {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return Statement{}, err
	}
	return Statement{SQL: sql, Args: args}, nil
}

// association is a game many-to-many link table and the named entity it points at.
type association struct {
	link   string
	fk     string
	entity string
}

var (
	genreAssoc     = association{link: "game_genre", fk: "genre_id", entity: "genre"}
	tagAssoc       = association{link: "game_tag", fk: "tag_id", entity: "tag"}
	languageAssoc  = association{link: "game_language", fk: "language_id", entity: "language"}
	developerAssoc = association{link: "game_developer", fk: "company_id", entity: "company"}
	publisherAssoc = association{link: "game_publisher", fk: "company_id", entity: "company"}
)

// leftJoin joins the link table on appID and then the entity. A non-empty alias
// names the entity (and "<alias>_link" the link table) so that the same entity
// can be joined twice in one statement.
func (a association) leftJoin(ds *goqu.SelectDataset, appID exp.IdentifierExpression, alias string) *goqu.SelectDataset {
	link, entity := goqu.T(a.link), goqu.T(a.entity)
	var linkFrom, entityFrom exp.Expression = link, entity
	if alias != "" {
		linkFrom, entityFrom = link.As(alias+"_link"), entity.As(alias)
		link, entity = goqu.T(alias+"_link"), goqu.T(alias)
	}
	return ds.
		LeftJoin(linkFrom, goqu.On(link.Col("game_app_id").Eq(appID))).
		LeftJoin(entityFrom, goqu.On(entity.Col("id").Eq(link.Col(a.fk))))
}

// from starts a statement at the link table, inner-joined to its entity.
func (a association) from() (*goqu.SelectDataset, exp.IdentifierExpression) {
	link, entity := goqu.T(a.link), goqu.T(a.entity)
	ds := dialect.From(link).
		InnerJoin(entity, goqu.On(entity.Col("id").Eq(link.Col(a.fk))))
	return ds, link.Col("game_app_id")
}

// Package sqlite implements depclose.CatalogGateway against the canonical
// relational catalog schema (groups, group_key_values, key_val,
// requirements, group_requirements, files, group_files), backed by a
// pure-Go SQLite driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "modernc.org/sqlite"

	"github.com/open-edge-platform/pkgcloser/internal/depclose"
	"github.com/open-edge-platform/pkgcloser/internal/utils/logger"
)

// Gateway is a depclose.CatalogGateway backed by a sqlite database opened
// read-only against a pre-populated catalog.
type Gateway struct {
	db      *sql.DB
	dialect goqu.DialectWrapper
}

// Open opens the catalog at path read-only. The caller owns the returned
// Gateway and must call Close when done with it.
func Open(path string) (*Gateway, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening catalog %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: opening catalog %q: %w", path, err)
	}
	return &Gateway{db: db, dialect: goqu.Dialect("sqlite3")}, nil
}

// Close releases the underlying database handle.
func (g *Gateway) Close() error {
	return g.db.Close()
}

// bareName returns the first whitespace-separated token of expr, mirroring
// the catalog's own provides/requires key convention.
func bareName(expr string) string {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return expr
	}
	return fields[0]
}

func (g *Gateway) ProvidersOfName(thing string) ([]depclose.ProviderRef, error) {
	query, args, err := g.dialect.From(goqu.T("group_key_values").As("gkv")).
		Select(goqu.I("gkv.group_id"), goqu.I("kv.ext_value")).
		InnerJoin(goqu.T("key_val").As("kv"), goqu.On(goqu.I("kv.id").Eq(goqu.I("gkv.key_val_id")))).
		Where(
			goqu.I("kv.key_value").Eq("rpm-provide"),
			goqu.I("kv.val_value").Eq(bareName(thing)),
		).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("sqlite: building providers_of_name query: %w", err)
	}

	rows, err := g.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: providers_of_name(%q): %w", thing, err)
	}
	defer rows.Close()

	var out []depclose.ProviderRef
	for rows.Next() {
		var groupID int64
		var ext sql.NullString
		if err := rows.Scan(&groupID, &ext); err != nil {
			return nil, fmt.Errorf("sqlite: scanning providers_of_name row: %w", err)
		}
		if ext.Valid {
			out = append(out, depclose.ProviderRef{GroupID: groupID, Expr: ext.String, HasExpr: true})
		} else {
			out = append(out, depclose.ProviderRef{GroupID: groupID})
		}
	}
	return out, rows.Err()
}

func (g *Gateway) GroupsContainingFile(path string) ([]int64, error) {
	query, args, err := g.dialect.From(goqu.T("group_files").As("gf")).
		Select(goqu.I("gf.group_id")).
		InnerJoin(goqu.T("files").As("f"), goqu.On(goqu.I("f.id").Eq(goqu.I("gf.file_id")))).
		Where(goqu.I("f.path").Eq(path)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("sqlite: building groups_containing_file query: %w", err)
	}

	rows, err := g.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: groups_containing_file(%q): %w", path, err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var groupID int64
		if err := rows.Scan(&groupID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning groups_containing_file row: %w", err)
		}
		out = append(out, groupID)
	}
	return out, rows.Err()
}

func (g *Gateway) RequirementsOfGroup(groupID int64) ([]string, error) {
	query, args, err := g.dialect.From(goqu.T("group_requirements").As("gr")).
		Select(goqu.I("r.req_expr")).
		InnerJoin(goqu.T("requirements").As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("gr.req_id")))).
		Where(
			goqu.I("gr.group_id").Eq(groupID),
			goqu.I("r.req_expr").NotLike("rpmlib%"),
		).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("sqlite: building requirements_of_group query: %w", err)
	}

	rows, err := g.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: requirements_of_group(%d): %w", groupID, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var expr string
		if err := rows.Scan(&expr); err != nil {
			return nil, fmt.Errorf("sqlite: scanning requirements_of_group row: %w", err)
		}
		out = append(out, expr)
	}
	return out, rows.Err()
}

func (g *Gateway) ObsoletesOfGroup(groupID int64) ([]depclose.ObsoleteRef, error) {
	query, args, err := g.dialect.From(goqu.T("groups").As("grp")).
		SelectDistinct(goqu.I("grp.name"), goqu.I("kv.ext_value")).
		InnerJoin(goqu.T("group_key_values").As("gkv"), goqu.On(goqu.I("gkv.group_id").Eq(goqu.I("grp.id")))).
		InnerJoin(goqu.T("key_val").As("kv"), goqu.On(goqu.I("kv.id").Eq(goqu.I("gkv.key_val_id")))).
		Where(
			goqu.I("grp.id").Eq(groupID),
			goqu.I("kv.key_value").Eq("rpm-obsolete"),
		).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("sqlite: building obsoletes_of_group query: %w", err)
	}

	rows, err := g.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: obsoletes_of_group(%d): %w", groupID, err)
	}
	defer rows.Close()

	var out []depclose.ObsoleteRef
	for rows.Next() {
		var name string
		var expr sql.NullString
		if err := rows.Scan(&name, &expr); err != nil {
			return nil, fmt.Errorf("sqlite: scanning obsoletes_of_group row: %w", err)
		}
		out = append(out, depclose.ObsoleteRef{Name: name, Expr: expr.String})
	}
	return out, rows.Err()
}

func (g *Gateway) NEVRAOfGroup(groupID int64) (depclose.NEVRA, bool, error) {
	query, args, err := g.dialect.From(goqu.T("group_key_values").As("gkv")).
		Select(goqu.I("kv.key_value"), goqu.I("kv.val_value")).
		InnerJoin(goqu.T("key_val").As("kv"), goqu.On(goqu.I("kv.id").Eq(goqu.I("gkv.key_val_id")))).
		Where(goqu.I("gkv.group_id").Eq(groupID)).
		ToSQL()
	if err != nil {
		return depclose.NEVRA{}, false, fmt.Errorf("sqlite: building nevra_of_group query: %w", err)
	}

	rows, err := g.db.Query(query, args...)
	if err != nil {
		return depclose.NEVRA{}, false, fmt.Errorf("sqlite: nevra_of_group(%d): %w", groupID, err)
	}
	defer rows.Close()

	var n depclose.NEVRA
	var haveName, haveVersion, haveRelease, haveArch bool
	for rows.Next() {
		var key, val string
		if err := rows.Scan(&key, &val); err != nil {
			return depclose.NEVRA{}, false, fmt.Errorf("sqlite: scanning nevra_of_group row: %w", err)
		}
		switch key {
		case "name":
			n.Name = val
			haveName = true
		case "epoch":
			e, perr := strconv.ParseUint(val, 10, 32)
			if perr != nil {
				logger.Logger().Warnw("catalog group has unparsable epoch, treating as 0", "group_id", groupID, "epoch", val)
				continue
			}
			n.Epoch = uint32(e)
			n.HasE = true
		case "version":
			n.Version = val
			haveVersion = true
		case "release":
			n.Release = val
			haveRelease = true
		case "arch":
			n.Arch = val
			haveArch = true
		}
	}
	if err := rows.Err(); err != nil {
		return depclose.NEVRA{}, false, err
	}

	if !haveName || !haveVersion || !haveRelease || !haveArch {
		return depclose.NEVRA{}, false, nil
	}
	return n, true, nil
}

package service

import (
	"context"
	"sort"

	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/model"
	"fiscalmanager/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubUsuarioRepo is an in-memory UsuarioRepository for testing.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// stubEmpresaRepo is an in-memory EmpresaRepository for testing.
type stubEmpresaRepo struct {
	empresas map[uuid.UUID]*model.Empresa
}

func newStubEmpresaRepo() *stubEmpresaRepo {
	return &stubEmpresaRepo{empresas: make(map[uuid.UUID]*model.Empresa)}
}

func (r *stubEmpresaRepo) Create(_ context.Context, e *model.Empresa) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.empresas[e.ID] = e
	return nil
}

func (r *stubEmpresaRepo) FindByID(_ context.Context, usuarioID, id uuid.UUID) (*model.Empresa, error) {
	e, ok := r.empresas[id]
	if !ok || e.UsuarioID != usuarioID {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmpresaRepo) ExistsByCNPJ(_ context.Context, usuarioID uuid.UUID, cnpj string) (bool, error) {
	for _, e := range r.empresas {
		if e.UsuarioID == usuarioID && e.CNPJ == cnpj {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubEmpresaRepo) List(_ context.Context, usuarioID uuid.UUID) ([]model.Empresa, error) {
	var out []model.Empresa
	for _, e := range r.empresas {
		if e.UsuarioID == usuarioID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEmpresaRepo) Update(_ context.Context, e *model.Empresa) error {
	r.empresas[e.ID] = e
	return nil
}

func (r *stubEmpresaRepo) Delete(_ context.Context, usuarioID, id uuid.UUID) (int64, error) {
	e, ok := r.empresas[id]
	if !ok || e.UsuarioID != usuarioID {
		return 0, nil
	}
	delete(r.empresas, id)
	return 1, nil
}

func (r *stubEmpresaRepo) Count(_ context.Context, usuarioID uuid.UUID) (int64, error) {
	var n int64
	for _, e := range r.empresas {
		if e.UsuarioID == usuarioID {
			n++
		}
	}
	return n, nil
}

var _ repository.EmpresaRepository = (*stubEmpresaRepo)(nil)

// stubProdutoRepo is an in-memory ProdutoRepository for testing.
type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, usuarioID, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok || p.UsuarioID != usuarioID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) List(_ context.Context, usuarioID uuid.UUID, filter dto.ProdutoFilter) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if p.UsuarioID != usuarioID {
			continue
		}
		if filter.EmpresaID != "" && p.EmpresaID.String() != filter.EmpresaID {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, usuarioID, id uuid.UUID) (int64, error) {
	p, ok := r.produtos[id]
	if !ok || p.UsuarioID != usuarioID {
		return 0, nil
	}
	delete(r.produtos, id)
	return 1, nil
}

func (r *stubProdutoRepo) Count(_ context.Context, usuarioID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.produtos {
		if p.UsuarioID == usuarioID {
			n++
		}
	}
	return n, nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// stubNotaRepo is an in-memory NotaRepository for testing.
type stubNotaRepo struct {
	notas map[uuid.UUID]*model.NotaFiscal
}

func newStubNotaRepo() *stubNotaRepo {
	return &stubNotaRepo{notas: make(map[uuid.UUID]*model.NotaFiscal)}
}

func (r *stubNotaRepo) Create(_ context.Context, n *model.NotaFiscal) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	for i := range n.Itens {
		if n.Itens[i].ID == uuid.Nil {
			n.Itens[i].ID = uuid.New()
		}
		n.Itens[i].NotaID = n.ID
	}
	r.notas[n.ID] = n
	return nil
}

func (r *stubNotaRepo) FindByID(_ context.Context, usuarioID, id uuid.UUID) (*model.NotaFiscal, error) {
	n, ok := r.notas[id]
	if !ok || n.UsuarioID != usuarioID {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (r *stubNotaRepo) List(_ context.Context, usuarioID uuid.UUID) ([]model.NotaFiscal, error) {
	var out []model.NotaFiscal
	for _, n := range r.notas {
		if n.UsuarioID == usuarioID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataEmissao.After(out[j].DataEmissao) })
	return out, nil
}

func (r *stubNotaRepo) Delete(_ context.Context, usuarioID, id uuid.UUID) (int64, error) {
	n, ok := r.notas[id]
	if !ok || n.UsuarioID != usuarioID {
		return 0, nil
	}
	delete(r.notas, id)
	return 1, nil
}

func (r *stubNotaRepo) Count(_ context.Context, usuarioID uuid.UUID) (int64, error) {
	var c int64
	for _, n := range r.notas {
		if n.UsuarioID == usuarioID {
			c++
		}
	}
	return c, nil
}

func (r *stubNotaRepo) ExistsByEmpresa(_ context.Context, empresaID uuid.UUID) (bool, error) {
	for _, n := range r.notas {
		if n.EmpresaID == empresaID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubNotaRepo) ExistsByProduto(_ context.Context, produtoID uuid.UUID) (bool, error) {
	for _, n := range r.notas {
		for _, item := range n.Itens {
			if item.ProdutoID == produtoID {
				return true, nil
			}
		}
	}
	return false, nil
}

var _ repository.NotaRepository = (*stubNotaRepo)(nil)

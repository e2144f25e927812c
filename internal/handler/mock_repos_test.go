package handler

import (
	"logbook-lapangan-backend/internal/model"
	"logbook-lapangan-backend/internal/repository"

	"gorm.io/gorm"
)

// Mock repository berbasis map untuk test handler, tanpa database.

// ── Mock ItemPenugasanRepository ──

type mockItemRepo struct {
	items  map[uint]*model.ItemPenugasan
	nextID uint
	// diisi mockPenugasanRepo agar transisi induk ikut tersimpan
	penugasanRepo *mockPenugasanRepo

	// usaiGetByID dipanggil setelah GetByID menyalin data; dipakai untuk
	// menyelakan request lain di antara baca dan simpan
	usaiGetByID func(id uint)
	// errDelete menggagalkan Delete bila diisi
	errDelete error
}

func newMockItemRepo(penugasanRepo *mockPenugasanRepo) *mockItemRepo {
	return &mockItemRepo{items: make(map[uint]*model.ItemPenugasan), nextID: 1, penugasanRepo: penugasanRepo}
}

func (m *mockItemRepo) tambah(item model.ItemPenugasan) *model.ItemPenugasan {
	if item.ID == 0 {
		item.ID = m.nextID
		m.nextID++
	} else if item.ID >= m.nextID {
		m.nextID = item.ID + 1
	}
	m.items[item.ID] = &item
	return m.items[item.ID]
}

func (m *mockItemRepo) Create(item *model.ItemPenugasan) error {
	item.ID = m.nextID
	m.nextID++
	salinan := *item
	m.items[item.ID] = &salinan
	return nil
}

func (m *mockItemRepo) GetByID(id uint) (*model.ItemPenugasan, error) {
	if item, ok := m.items[id]; ok {
		salinan := *item
		if m.usaiGetByID != nil {
			m.usaiGetByID(id)
		}
		return &salinan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockItemRepo) CountByPenugasan(penugasanID uint) (int64, error) {
	var count int64
	for _, item := range m.items {
		if item.PenugasanID == penugasanID {
			count++
		}
	}
	return count, nil
}

func (m *mockItemRepo) CountBelumSelesai(penugasanID uint) (int64, error) {
	var count int64
	for _, item := range m.items {
		if item.PenugasanID == penugasanID && item.Status != model.StatusSelesai {
			count++
		}
	}
	return count, nil
}

func (m *mockItemRepo) CountDikerjakanSelain(penugasanID uint, kecualiItemID uint) (int64, error) {
	var count int64
	for _, item := range m.items {
		if item.PenugasanID == penugasanID && item.Status == model.StatusDikerjakan && item.ID != kecualiItemID {
			count++
		}
	}
	return count, nil
}

func (m *mockItemRepo) SimpanMulai(item *model.ItemPenugasan, penugasan *model.Penugasan) error {
	tersimpan, ok := m.items[item.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// Cek ulang seperti di dalam transaksi dengan row lock
	if tersimpan.WaktuMulai != nil {
		return repository.ErrSudahDimulai
	}
	salinan := *item
	m.items[item.ID] = &salinan
	if penugasan != nil && m.penugasanRepo != nil {
		m.penugasanRepo.simpan(penugasan)
	}
	return nil
}

func (m *mockItemRepo) SimpanSelesai(item *model.ItemPenugasan) error {
	tersimpan, ok := m.items[item.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if tersimpan.WaktuMulai == nil {
		return repository.ErrBelumDimulai
	}
	if tersimpan.WaktuSelesai != nil {
		return repository.ErrSudahSelesai
	}
	salinan := *item
	m.items[item.ID] = &salinan
	return nil
}

func (m *mockItemRepo) Delete(item *model.ItemPenugasan, penugasan *model.Penugasan) error {
	if m.errDelete != nil {
		return m.errDelete
	}
	delete(m.items, item.ID)
	if penugasan != nil && m.penugasanRepo != nil {
		m.penugasanRepo.simpan(penugasan)
	}
	return nil
}

// ── Mock PenugasanRepository ──

type mockPenugasanRepo struct {
	penugasans map[uint]*model.Penugasan
	nextID     uint
	itemRepo   *mockItemRepo
}

func newMockPenugasanRepo() *mockPenugasanRepo {
	return &mockPenugasanRepo{penugasans: make(map[uint]*model.Penugasan), nextID: 1}
}

func (m *mockPenugasanRepo) simpan(penugasan *model.Penugasan) {
	salinan := *penugasan
	salinan.Items = nil
	m.penugasans[penugasan.ID] = &salinan
}

func (m *mockPenugasanRepo) tambah(penugasan model.Penugasan) *model.Penugasan {
	if penugasan.ID == 0 {
		penugasan.ID = m.nextID
		m.nextID++
	} else if penugasan.ID >= m.nextID {
		m.nextID = penugasan.ID + 1
	}
	m.penugasans[penugasan.ID] = &penugasan
	return m.penugasans[penugasan.ID]
}

func (m *mockPenugasanRepo) Create(penugasan *model.Penugasan) error {
	penugasan.ID = m.nextID
	m.nextID++
	for i := range penugasan.Items {
		penugasan.Items[i].PenugasanID = penugasan.ID
		if m.itemRepo != nil {
			dibuat := m.itemRepo.tambah(penugasan.Items[i])
			penugasan.Items[i] = *dibuat
		}
	}
	m.simpan(penugasan)
	return nil
}

func (m *mockPenugasanRepo) CreateMany(penugasans []model.Penugasan) error {
	for i := range penugasans {
		if err := m.Create(&penugasans[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockPenugasanRepo) GetByID(id uint) (*model.Penugasan, error) {
	if p, ok := m.penugasans[id]; ok {
		salinan := *p
		return &salinan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPenugasanRepo) GetByPetugas(petugasID uint) ([]model.Penugasan, error) {
	var list []model.Penugasan
	for _, p := range m.penugasans {
		if p.PetugasID == petugasID {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (m *mockPenugasanRepo) GetAll() ([]model.Penugasan, error) {
	var list []model.Penugasan
	for _, p := range m.penugasans {
		list = append(list, *p)
	}
	return list, nil
}

func (m *mockPenugasanRepo) Update(penugasan *model.Penugasan) error {
	if _, ok := m.penugasans[penugasan.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.simpan(penugasan)
	return nil
}

func (m *mockPenugasanRepo) Delete(penugasan *model.Penugasan) error {
	delete(m.penugasans, penugasan.ID)
	if m.itemRepo != nil {
		for id, item := range m.itemRepo.items {
			if item.PenugasanID == penugasan.ID {
				delete(m.itemRepo.items, id)
			}
		}
	}
	return nil
}

// ── Mock TugasRepository ──

type mockTugasRepo struct {
	tugas  map[uint]*model.Tugas
	nextID uint
}

func newMockTugasRepo() *mockTugasRepo {
	return &mockTugasRepo{tugas: make(map[uint]*model.Tugas), nextID: 1}
}

func (m *mockTugasRepo) tambah(t model.Tugas) *model.Tugas {
	if t.ID == 0 {
		t.ID = m.nextID
		m.nextID++
	}
	m.tugas[t.ID] = &t
	return m.tugas[t.ID]
}

func (m *mockTugasRepo) GetAll() ([]model.Tugas, error) {
	var list []model.Tugas
	for _, t := range m.tugas {
		list = append(list, *t)
	}
	return list, nil
}

func (m *mockTugasRepo) GetByID(id uint) (*model.Tugas, error) {
	if t, ok := m.tugas[id]; ok {
		salinan := *t
		return &salinan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTugasRepo) Create(t *model.Tugas) error {
	t.ID = m.nextID
	m.nextID++
	salinan := *t
	m.tugas[t.ID] = &salinan
	return nil
}

func (m *mockTugasRepo) Update(t *model.Tugas) error {
	salinan := *t
	m.tugas[t.ID] = &salinan
	return nil
}

func (m *mockTugasRepo) Delete(id uint) error {
	delete(m.tugas, id)
	return nil
}

// ── Mock HariLiburRepository ──

type mockHariLiburRepo struct {
	liburs map[string]*model.HariLibur // key: tanggal
	nextID uint
}

func newMockHariLiburRepo() *mockHariLiburRepo {
	return &mockHariLiburRepo{liburs: make(map[string]*model.HariLibur), nextID: 1}
}

func (m *mockHariLiburRepo) GetAll() ([]model.HariLibur, error) {
	var list []model.HariLibur
	for _, l := range m.liburs {
		list = append(list, *l)
	}
	return list, nil
}

func (m *mockHariLiburRepo) Create(libur *model.HariLibur) error {
	if _, ada := m.liburs[libur.Tanggal]; ada {
		return gorm.ErrDuplicatedKey
	}
	libur.ID = m.nextID
	m.nextID++
	salinan := *libur
	m.liburs[libur.Tanggal] = &salinan
	return nil
}

func (m *mockHariLiburRepo) Delete(id uint) error {
	for tanggal, l := range m.liburs {
		if l.ID == id {
			delete(m.liburs, tanggal)
		}
	}
	return nil
}

func (m *mockHariLiburRepo) IsHoliday(date string) (bool, error) {
	_, ada := m.liburs[date]
	return ada, nil
}

func (m *mockHariLiburRepo) GetByTanggal(date string) (*model.HariLibur, error) {
	if l, ok := m.liburs[date]; ok {
		salinan := *l
		return &salinan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHariLiburRepo) GetByID(id uint) (*model.HariLibur, error) {
	for _, l := range m.liburs {
		if l.ID == id {
			salinan := *l
			return &salinan, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHariLiburRepo) Update(libur *model.HariLibur) error {
	m.liburs[libur.Tanggal] = libur
	return nil
}

// ── Mock TemplatePenugasanRepository ──

type mockTemplateRepo struct {
	templates map[uint]*model.TemplatePenugasanHarian
	nextID    uint
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{templates: make(map[uint]*model.TemplatePenugasanHarian), nextID: 1}
}

func (m *mockTemplateRepo) tambah(t model.TemplatePenugasanHarian) *model.TemplatePenugasanHarian {
	if t.ID == 0 {
		t.ID = m.nextID
		m.nextID++
	}
	m.templates[t.ID] = &t
	return m.templates[t.ID]
}

func (m *mockTemplateRepo) GetAll() ([]model.TemplatePenugasanHarian, error) {
	var list []model.TemplatePenugasanHarian
	for _, t := range m.templates {
		list = append(list, *t)
	}
	return list, nil
}

func (m *mockTemplateRepo) GetAllActive() ([]model.TemplatePenugasanHarian, error) {
	var list []model.TemplatePenugasanHarian
	for _, t := range m.templates {
		if t.IsActive {
			list = append(list, *t)
		}
	}
	return list, nil
}

func (m *mockTemplateRepo) GetByID(id uint) (*model.TemplatePenugasanHarian, error) {
	if t, ok := m.templates[id]; ok {
		salinan := *t
		return &salinan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTemplateRepo) Create(t *model.TemplatePenugasanHarian) error {
	t.ID = m.nextID
	m.nextID++
	salinan := *t
	m.templates[t.ID] = &salinan
	return nil
}

func (m *mockTemplateRepo) UpdateDenganItems(t *model.TemplatePenugasanHarian, items []model.TemplateItemPenugasan) error {
	for i := range items {
		items[i].TemplateID = t.ID
	}
	t.Items = items
	salinan := *t
	m.templates[t.ID] = &salinan
	return nil
}

func (m *mockTemplateRepo) Delete(t *model.TemplatePenugasanHarian) error {
	delete(m.templates, t.ID)
	return nil
}

// ── Mock PetugasRepository ──

type mockPetugasRepo struct {
	petugas map[uint]*model.Petugas
	nextID  uint
}

func newMockPetugasRepo() *mockPetugasRepo {
	return &mockPetugasRepo{petugas: make(map[uint]*model.Petugas), nextID: 1}
}

func (m *mockPetugasRepo) tambah(p model.Petugas) *model.Petugas {
	if p.ID == 0 {
		p.ID = m.nextID
		m.nextID++
	}
	m.petugas[p.ID] = &p
	return m.petugas[p.ID]
}

func (m *mockPetugasRepo) FindByUsername(username string) (*model.Petugas, error) {
	for _, p := range m.petugas {
		if p.Username == username {
			salinan := *p
			return &salinan, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPetugasRepo) FindByID(id uint) (*model.Petugas, error) {
	if p, ok := m.petugas[id]; ok {
		salinan := *p
		return &salinan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPetugasRepo) Create(p *model.Petugas) error {
	p.ID = m.nextID
	m.nextID++
	salinan := *p
	m.petugas[p.ID] = &salinan
	return nil
}

func (m *mockPetugasRepo) Update(p *model.Petugas) error {
	salinan := *p
	m.petugas[p.ID] = &salinan
	return nil
}

func (m *mockPetugasRepo) GetAll() ([]model.Petugas, error) {
	var list []model.Petugas
	for _, p := range m.petugas {
		list = append(list, *p)
	}
	return list, nil
}

// ── Mock Notifier ──

type notifikasiTercatat struct {
	Email   string
	Tanggal string
	Jumlah  int
}

type mockNotifier struct {
	terkirim []notifikasiTercatat
}

func (m *mockNotifier) KirimPenugasanBaru(email, nama, tanggal string, jumlah int) error {
	m.terkirim = append(m.terkirim, notifikasiTercatat{Email: email, Tanggal: tanggal, Jumlah: jumlah})
	return nil
}

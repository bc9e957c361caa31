package inmemory

import (
	"context"
	"sync"
)

// TxManager сериализует путь записи для in-memory движка: настоящих
// транзакций нет, поэтому критическая секция "перепроверка доступности +
// вставка" выполняется под единым мьютексом. Этого достаточно, чтобы из
// двух одновременных бронирований одного слота прошло ровно одно.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает новый in-memory менеджер транзакций
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do выполняет функцию под мьютексом записи
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable для in-memory движка эквивалентен Do: глобальный мьютекс
// даёт более строгую сериализацию, чем SERIALIZABLE
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет функцию без блокировки: читатели обслуживаются
// RWMutex самих хранилищ
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

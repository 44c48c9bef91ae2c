package database

// InitSchema creates all application tables if they do not exist
func (db *DB) InitSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    name VARCHAR(100) NOT NULL,
		    email VARCHAR(255) NOT NULL,
		    password VARCHAR(100) NOT NULL,
		    role ENUM('worker', 'admin', 'superadmin') NOT NULL DEFAULT 'worker',
		    phone VARCHAR(30),
		    is_active BOOLEAN NOT NULL DEFAULT TRUE,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS customers (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    name VARCHAR(100) NOT NULL,
		    email VARCHAR(255),
		    phone VARCHAR(30),
		    address TEXT,
		    last_purchase_date TIMESTAMP NULL,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		    INDEX idx_email (email),
		    INDEX idx_last_purchase (last_purchase_date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS jewelry (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    sku VARCHAR(64) NOT NULL,
		    name VARCHAR(255) NOT NULL,
		    category VARCHAR(32) NOT NULL,
		    subtype VARCHAR(100),
		    description TEXT,
		    quantity INT NOT NULL DEFAULT 0,
		    unit_price DECIMAL(12,2) NOT NULL,
		    cost_price DECIMAL(12,2) NOT NULL DEFAULT 0,
		    metal_type VARCHAR(100),
		    metal_weight DECIMAL(10,3),
		    stone_type VARCHAR(100),
		    stone_weight DECIMAL(10,3),
		    gemstone VARCHAR(100),
		    weight DECIMAL(10,3),
		    size VARCHAR(50),
		    color VARCHAR(50),
		    making_charges DECIMAL(12,2),
		    wastage DECIMAL(10,2),
		    labor_cost DECIMAL(12,2),
		    other_costs DECIMAL(12,2),
		    images JSON,
		    tags JSON,
		    notes TEXT,
		    status ENUM('active', 'inactive', 'sold') NOT NULL DEFAULT 'active',
		    is_active BOOLEAN NOT NULL DEFAULT TRUE,
		    low_stock_threshold INT NOT NULL DEFAULT 10,
		    min_stock_level INT NOT NULL DEFAULT 5,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_sku (sku),
		    INDEX idx_category (category),
		    INDEX idx_quantity (quantity),
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS sales (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    sale_number VARCHAR(20) NOT NULL,
		    customer_id BIGINT,
		    subtotal DECIMAL(12,2) NOT NULL DEFAULT 0,
		    discount DECIMAL(12,2) NOT NULL DEFAULT 0,
		    tax DECIMAL(12,2) NOT NULL DEFAULT 0,
		    total_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
		    payment_method ENUM('cash', 'card', 'upi', 'bank_transfer', 'cheque') NOT NULL,
		    payment_status ENUM('pending', 'paid', 'partial', 'refunded') NOT NULL DEFAULT 'pending',
		    paid_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
		    status ENUM('draft', 'confirmed', 'shipped', 'delivered', 'cancelled') NOT NULL DEFAULT 'draft',
		    notes TEXT,
		    sale_date TIMESTAMP NOT NULL,
		    created_by BIGINT,
		    updated_by BIGINT,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_sale_number (sale_number),
		    INDEX idx_customer_id (customer_id),
		    INDEX idx_sale_date (sale_date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS sale_items (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    sale_id BIGINT NOT NULL,
		    jewelry_id BIGINT NOT NULL,
		    quantity INT NOT NULL,
		    unit_price DECIMAL(12,2) NOT NULL,
		    total_price DECIMAL(12,2) NOT NULL,
		    FOREIGN KEY (sale_id) REFERENCES sales(id) ON DELETE CASCADE,
		    INDEX idx_sale_id (sale_id),
		    INDEX idx_jewelry_id (jewelry_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS rates (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    gold DECIMAL(12,2) NOT NULL,
		    silver DECIMAL(12,2) NOT NULL,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// DropSchema removes all application tables
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS sale_items",
		"DROP TABLE IF EXISTS sales",
		"DROP TABLE IF EXISTS jewelry",
		"DROP TABLE IF EXISTS customers",
		"DROP TABLE IF EXISTS rates",
		"DROP TABLE IF EXISTS users",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
